package utils

// Application constants
const (
	// Application name
	AppName = "Storefront"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// Default log directory
	DefaultLogDir = "logs"

	// Maximum file size for uploads (5MB)
	MaxFileSize = 5 * 1024 * 1024

	// Default page size of the product listing
	DefaultProductPageSize = 12

	// Default page size of the review list ("show more" loads the next 5)
	DefaultReviewPageSize = 5

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// Number of other products suggested on the detail page
	OtherProductsCount = 6
)

// Error messages
const (
	ErrInvalidCredentials = "Invalid username or password"
	ErrUnauthorized       = "Please login for access"
	ErrForbidden          = "Admin access required"
	ErrInvalidPhone       = "Invalid phone number"
	ErrInvalidFileType    = "Invalid file type. Allowed types: jpg, jpeg, png, gif, webp"
	ErrFileTooLarge       = "File size exceeds 5MB limit"

	// ErrGeneric is the single notification shown when the remote service fails
	ErrGeneric = "Something went wrong. Please try again"
	// ErrOrderSubmission is shown when the order could not be placed
	ErrOrderSubmission = "Please check your information and try again"
	// ErrFallback is the last-resort message of the recovery middleware
	ErrFallback = "Something went wrong. Please reload the page"
)

// Success messages
const (
	MsgLoginSuccess   = "Login successful"
	MsgLogoutSuccess  = "Logout successful"
	MsgSignUpSuccess  = "Sign up successful"
	MsgCreateSuccess  = "Created successfully"
	MsgUpdateSuccess  = "Updated successfully"
	MsgDeleteSuccess  = "Deleted successfully"
	MsgUploadSuccess  = "File uploaded successfully"
	MsgOrderPlaced    = "Order placed"
	MsgOrderConfirmed = "Thank you for your order"
)
