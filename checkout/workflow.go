package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Govind-619/Storefront/geography"
	"github.com/Govind-619/Storefront/models"
	"github.com/Govind-619/Storefront/utils"
)

// State of an order workflow
type State string

const (
	StateEditing    State = "editing"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

var (
	ErrSubmissionInProgress = errors.New("order submission already in progress")
	ErrAlreadySubmitted     = errors.New("order already submitted")
	ErrNotSubmitted         = errors.New("order has not been submitted")
	ErrSubmissionFailed     = errors.New("order submission failed")
	ErrUnknownOption        = errors.New("unknown option")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
)

// ValidationError lists the fields that block submission, in check order
type ValidationError struct {
	Fields utils.FieldValidationErrors
}

func (e *ValidationError) Error() string {
	return "invalid order: " + e.Fields.Error()
}

// OrderSubmitter creates orders on the remote service
type OrderSubmitter interface {
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error)
}

// Confirmation is what the thank-you view shows after a successful submission
type Confirmation struct {
	Order           *models.Order `json:"order"`
	ProductName     string        `json:"productName"`
	CustomerName    string        `json:"customerName"`
	PhoneNumber     string        `json:"phoneNumber"`
	ShippingAddress string        `json:"shippingAddress"`
	NetPrice        int64         `json:"netPrice"`
	Acknowledged    bool          `json:"acknowledged"`
}

// Patch sets several draft fields at once; nil fields are left untouched.
// Address parts are applied city first so one patch can set all three.
type Patch struct {
	CustomerName  *string   `json:"customerName"`
	PhoneNumber   *string   `json:"phoneNumber"`
	City          *string   `json:"city"`
	District      *string   `json:"district"`
	Ward          *string   `json:"ward"`
	DetailAddress *string   `json:"detailAddress"`
	Tiers         *[]string `json:"tiers"`
	Sizes         *[]string `json:"sizes"`
	Codes         *[]string `json:"codes"`
	Colors        *[]string `json:"colors"`
	Note          *string   `json:"note"`
	Quantity      *int      `json:"quantity"`
}

// View is a read-only copy of a workflow for rendering
type View struct {
	State        State                `json:"state"`
	Draft        Draft                `json:"draft"`
	FieldErrors  map[Field]string     `json:"fieldErrors"`
	Notification string               `json:"notification,omitempty"`
	Options      Options              `json:"options"`
	Cities       []geography.City     `json:"cities"`
	Districts    []geography.District `json:"districts"`
	Wards        []geography.Ward     `json:"wards"`
	Pricing      Pricing              `json:"pricing"`
	Confirmation *Confirmation        `json:"confirmation,omitempty"`
}

// Workflow is one visitor's order for one product. All methods are safe for
// concurrent use. The remote call in Submit runs outside the lock with the
// state held at StateSubmitting, which rejects a second submission.
type Workflow struct {
	mu           sync.Mutex
	product      models.Product
	options      Options
	geo          *geography.Dataset
	submitter    OrderSubmitter
	draft        Draft
	state        State
	fieldErrors  map[Field]string
	notification string
	confirmation *Confirmation
	lastUsed     time.Time
	now          func() time.Time
}

// NewWorkflow starts an empty draft for product
func NewWorkflow(product *models.Product, tiers []models.ProductTier, geo *geography.Dataset, submitter OrderSubmitter) *Workflow {
	if geo == nil {
		geo = geography.Default()
	}
	w := &Workflow{
		product:     *product,
		options:     OptionsFor(product, tiers),
		geo:         geo,
		submitter:   submitter,
		draft:       NewDraft(product.ID),
		state:       StateEditing,
		fieldErrors: make(map[Field]string),
		now:         time.Now,
	}
	w.lastUsed = w.now()
	return w
}

// ProductID returns the product the draft is for
func (w *Workflow) ProductID() string {
	return w.product.ID
}

// Refresh replaces the product and tier data the options and pricing are
// derived from. Selections the product no longer offers are dropped, so the
// next Submit asks for them again.
func (w *Workflow) Refresh(product *models.Product, tiers []models.ProductTier) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.product = *product
	w.options = OptionsFor(product, tiers)
	w.lastUsed = w.now()

	w.draft.Tiers = keepOffered(w.options.Tiers, w.draft.Tiers)
	w.draft.Sizes = keepOffered(w.options.Sizes, w.draft.Sizes)
	w.draft.Codes = keepOffered(w.options.Codes, w.draft.Codes)
	w.draft.Colors = keepOffered(w.options.Colors, w.draft.Colors)
}

// State returns the current state
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// idleSince reports the time of the last call; registry eviction reads it
func (w *Workflow) idleSince() (time.Time, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastUsed, w.state == StateSubmitting
}

func (w *Workflow) editable() error {
	switch w.state {
	case StateSubmitting:
		return ErrSubmissionInProgress
	case StateSucceeded:
		return ErrAlreadySubmitted
	}
	return nil
}

// mutate applies fn to the draft. A failed fn leaves the draft as it was.
func (w *Workflow) mutate(fn func() error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastUsed = w.now()

	if err := w.editable(); err != nil {
		return err
	}
	saved := w.draft.clone()
	savedErrors := make(map[Field]string, len(w.fieldErrors))
	for k, v := range w.fieldErrors {
		savedErrors[k] = v
	}
	if err := fn(); err != nil {
		w.draft = saved
		w.fieldErrors = savedErrors
		return err
	}
	if w.state == StateFailed {
		w.state = StateEditing
		w.notification = ""
	}
	return nil
}

func (w *Workflow) clearErrorIfSet(field Field, set bool) {
	if set {
		delete(w.fieldErrors, field)
	}
}

func (w *Workflow) setCustomerName(v string) error {
	w.draft.CustomerName = v
	w.clearErrorIfSet(FieldCustomerName, strings.TrimSpace(v) != "")
	return nil
}

func (w *Workflow) setPhoneNumber(v string) error {
	w.draft.PhoneNumber = v
	w.clearErrorIfSet(FieldPhoneNumber, strings.TrimSpace(v) != "")
	return nil
}

func (w *Workflow) selectCity(name string) error {
	if name != "" {
		if _, err := w.geo.City(name); err != nil {
			return err
		}
	}
	if name != w.draft.City {
		w.draft.District = ""
		w.draft.Ward = ""
	}
	w.draft.City = name
	w.clearErrorIfSet(FieldCity, name != "")
	return nil
}

func (w *Workflow) selectDistrict(name string) error {
	if name != "" {
		if _, err := w.geo.District(w.draft.City, name); err != nil {
			return err
		}
	}
	if name != w.draft.District {
		w.draft.Ward = ""
	}
	w.draft.District = name
	w.clearErrorIfSet(FieldDistrict, name != "")
	return nil
}

func (w *Workflow) selectWard(name string) error {
	if name != "" {
		if _, err := w.geo.Ward(w.draft.City, w.draft.District, name); err != nil {
			return err
		}
	}
	w.draft.Ward = name
	w.clearErrorIfSet(FieldWard, name != "")
	return nil
}

func (w *Workflow) setDetailAddress(v string) error {
	w.draft.DetailAddress = v
	return nil
}

func (w *Workflow) setTiers(ids []string) error {
	if err := checkValues(FieldTiers, w.options.Tiers, ids); err != nil {
		return err
	}
	w.draft.Tiers = cloneStrings(ids)
	w.clearErrorIfSet(FieldTiers, len(ids) > 0)
	return nil
}

func (w *Workflow) setSizes(values []string) error {
	if err := checkValues(FieldSizes, w.options.Sizes, values); err != nil {
		return err
	}
	w.draft.Sizes = cloneStrings(values)
	w.clearErrorIfSet(FieldSizes, len(values) > 0)
	return nil
}

func (w *Workflow) setCodes(values []string) error {
	if err := checkValues(FieldCodes, w.options.Codes, values); err != nil {
		return err
	}
	w.draft.Codes = cloneStrings(values)
	w.clearErrorIfSet(FieldCodes, len(values) > 0)
	return nil
}

func (w *Workflow) setColors(values []string) error {
	if err := checkValues(FieldColors, w.options.Colors, values); err != nil {
		return err
	}
	w.draft.Colors = cloneStrings(values)
	w.clearErrorIfSet(FieldColors, len(values) > 0)
	return nil
}

func (w *Workflow) setNote(v string) error {
	w.draft.Note = v
	return nil
}

func (w *Workflow) setQuantity(n int) error {
	if n < 1 {
		return ErrInvalidQuantity
	}
	w.draft.Quantity = n
	delete(w.fieldErrors, FieldQuantity)
	return nil
}

func (w *Workflow) SetCustomerName(v string) error {
	return w.mutate(func() error { return w.setCustomerName(v) })
}

func (w *Workflow) SetPhoneNumber(v string) error {
	return w.mutate(func() error { return w.setPhoneNumber(v) })
}

// SelectCity sets the city and, when it changes, clears district and ward
func (w *Workflow) SelectCity(name string) error {
	return w.mutate(func() error { return w.selectCity(name) })
}

// SelectDistrict sets the district of the selected city and, when it changes, clears the ward
func (w *Workflow) SelectDistrict(name string) error {
	return w.mutate(func() error { return w.selectDistrict(name) })
}

func (w *Workflow) SelectWard(name string) error {
	return w.mutate(func() error { return w.selectWard(name) })
}

func (w *Workflow) SetDetailAddress(v string) error {
	return w.mutate(func() error { return w.setDetailAddress(v) })
}

func (w *Workflow) SetTiers(ids []string) error {
	return w.mutate(func() error { return w.setTiers(ids) })
}

func (w *Workflow) SetSizes(values []string) error {
	return w.mutate(func() error { return w.setSizes(values) })
}

func (w *Workflow) SetCodes(values []string) error {
	return w.mutate(func() error { return w.setCodes(values) })
}

func (w *Workflow) SetColors(values []string) error {
	return w.mutate(func() error { return w.setColors(values) })
}

func (w *Workflow) SetNote(v string) error {
	return w.mutate(func() error { return w.setNote(v) })
}

func (w *Workflow) SetQuantity(n int) error {
	return w.mutate(func() error { return w.setQuantity(n) })
}

// Apply sets every non-nil field of p, all or nothing
func (w *Workflow) Apply(p Patch) error {
	return w.mutate(func() error {
		steps := []func() error{}
		if p.CustomerName != nil {
			steps = append(steps, func() error { return w.setCustomerName(*p.CustomerName) })
		}
		if p.PhoneNumber != nil {
			steps = append(steps, func() error { return w.setPhoneNumber(*p.PhoneNumber) })
		}
		if p.City != nil {
			steps = append(steps, func() error { return w.selectCity(*p.City) })
		}
		if p.District != nil {
			steps = append(steps, func() error { return w.selectDistrict(*p.District) })
		}
		if p.Ward != nil {
			steps = append(steps, func() error { return w.selectWard(*p.Ward) })
		}
		if p.DetailAddress != nil {
			steps = append(steps, func() error { return w.setDetailAddress(*p.DetailAddress) })
		}
		if p.Tiers != nil {
			steps = append(steps, func() error { return w.setTiers(*p.Tiers) })
		}
		if p.Sizes != nil {
			steps = append(steps, func() error { return w.setSizes(*p.Sizes) })
		}
		if p.Codes != nil {
			steps = append(steps, func() error { return w.setCodes(*p.Codes) })
		}
		if p.Colors != nil {
			steps = append(steps, func() error { return w.setColors(*p.Colors) })
		}
		if p.Note != nil {
			steps = append(steps, func() error { return w.setNote(*p.Note) })
		}
		if p.Quantity != nil {
			steps = append(steps, func() error { return w.setQuantity(*p.Quantity) })
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}
		return nil
	})
}

// validate returns the blocking field errors in check order
func (w *Workflow) validate() utils.FieldValidationErrors {
	var errs utils.FieldValidationErrors
	add := func(f Field, msg string) {
		errs = append(errs, utils.FieldValidationError{Field: string(f), Message: msg})
	}
	d := w.draft

	if strings.TrimSpace(d.CustomerName) == "" {
		add(FieldCustomerName, "Please enter your name")
	}
	switch {
	case strings.TrimSpace(d.PhoneNumber) == "":
		add(FieldPhoneNumber, "Please enter your phone number")
	case !utils.IsValidPhone(d.PhoneNumber):
		add(FieldPhoneNumber, utils.ErrInvalidPhone)
	}
	if d.City == "" {
		add(FieldCity, "Please choose a city")
	}
	if d.District == "" {
		add(FieldDistrict, "Please choose a district")
	}
	if d.Ward == "" {
		add(FieldWard, "Please choose a ward")
	}
	if w.options.HasTiers() {
		if len(d.Tiers) == 0 {
			add(FieldTiers, "Please choose a bundle")
		}
	} else if d.Quantity < 1 {
		add(FieldQuantity, ErrInvalidQuantity.Error())
	}
	if len(w.options.Sizes) > 0 && len(d.Sizes) == 0 {
		add(FieldSizes, "Please choose a size")
	}
	if len(w.options.Codes) > 0 && len(d.Codes) == 0 {
		add(FieldCodes, "Please choose a code")
	}
	if len(w.options.Colors) > 0 && len(d.Colors) == 0 {
		add(FieldColors, "Please choose a color")
	}
	return errs
}

// Submit validates the draft and places the order. Validation failures come
// back as *ValidationError without any remote call; a remote failure leaves
// the draft intact in StateFailed and wraps ErrSubmissionFailed.
func (w *Workflow) Submit(ctx context.Context) (*Confirmation, error) {
	w.mu.Lock()
	w.lastUsed = w.now()
	if err := w.editable(); err != nil {
		w.mu.Unlock()
		return nil, err
	}

	w.state = StateValidating
	if errs := w.validate(); len(errs) > 0 {
		w.fieldErrors = make(map[Field]string, len(errs))
		for _, e := range errs {
			w.fieldErrors[Field(e.Field)] = e.Message
		}
		w.state = StateEditing
		w.mu.Unlock()
		return nil, &ValidationError{Fields: errs}
	}

	w.fieldErrors = make(map[Field]string)
	w.notification = ""
	w.state = StateSubmitting
	req := w.draft.Request()
	product := w.product
	submitter := w.submitter
	w.mu.Unlock()

	utils.LogInfo("Submitting order for product %s", req.ProductID)
	order, err := submitter.CreateOrder(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastUsed = w.now()
	if err != nil {
		w.state = StateFailed
		w.notification = utils.ErrOrderSubmission
		utils.LogError("Order submission for product %s failed: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	w.state = StateSucceeded
	w.confirmation = &Confirmation{
		Order:           order,
		ProductName:     product.Name,
		CustomerName:    req.CustomerName,
		PhoneNumber:     req.PhoneNumber,
		ShippingAddress: req.ShippingAddress,
		NetPrice:        NetPriceUnits(product.Price, product.DiscountPercentage),
	}
	w.draft = NewDraft(product.ID)
	utils.LogInfo("Order %s placed for product %s", order.ID, product.ID)

	c := *w.confirmation
	return &c, nil
}

// Confirm acknowledges the thank-you view. It never submits again.
func (w *Workflow) Confirm() (*Confirmation, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastUsed = w.now()
	if w.state != StateSucceeded || w.confirmation == nil {
		return nil, ErrNotSubmitted
	}
	w.confirmation.Acknowledged = true
	c := *w.confirmation
	return &c, nil
}

// Reset starts a new empty draft, dropping any confirmation
func (w *Workflow) Reset() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastUsed = w.now()
	if w.state == StateSubmitting {
		return ErrSubmissionInProgress
	}
	w.draft = NewDraft(w.product.ID)
	w.state = StateEditing
	w.fieldErrors = make(map[Field]string)
	w.notification = ""
	w.confirmation = nil
	return nil
}

// Snapshot returns a copy of the workflow for rendering
func (w *Workflow) Snapshot() View {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastUsed = w.now()

	v := View{
		State:        w.state,
		Draft:        w.draft.clone(),
		FieldErrors:  make(map[Field]string, len(w.fieldErrors)),
		Notification: w.notification,
		Options:      w.options,
		Cities:       w.geo.CityList(),
		Districts:    []geography.District{},
		Wards:        []geography.Ward{},
		Pricing:      PricingFor(&w.product),
	}
	for k, msg := range w.fieldErrors {
		v.FieldErrors[k] = msg
	}
	if w.draft.City != "" {
		if districts, err := w.geo.Districts(w.draft.City); err == nil {
			for _, d := range districts {
				v.Districts = append(v.Districts, geography.District{ID: d.ID, Name: d.Name})
			}
		}
	}
	if w.draft.District != "" {
		if wards, err := w.geo.Wards(w.draft.City, w.draft.District); err == nil {
			v.Wards = append(v.Wards, wards...)
		}
	}
	if w.confirmation != nil {
		c := *w.confirmation
		v.Confirmation = &c
	}
	return v
}
