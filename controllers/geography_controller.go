package controllers

import (
	"errors"

	"github.com/Govind-619/Storefront/geography"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-gonic/gin"
)

func (ctl *Controller) ListCities(c *gin.Context) {
	utils.Success(c, "Cities retrieved successfully", gin.H{"cities": ctl.Geography.CityList()})
}

func (ctl *Controller) ListDistricts(c *gin.Context) {
	districts, err := ctl.Geography.Districts(c.Param("city"))
	if err != nil {
		utils.NotFound(c, err.Error())
		return
	}
	out := make([]geography.District, 0, len(districts))
	for _, d := range districts {
		out = append(out, geography.District{ID: d.ID, Name: d.Name})
	}
	utils.Success(c, "Districts retrieved successfully", gin.H{"districts": out})
}

func (ctl *Controller) ListWards(c *gin.Context) {
	wards, err := ctl.Geography.Wards(c.Param("city"), c.Param("district"))
	if err != nil {
		if errors.Is(err, geography.ErrUnknownCity) || errors.Is(err, geography.ErrUnknownDistrict) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalServerError(c, utils.ErrGeneric, nil)
		return
	}
	utils.Success(c, "Wards retrieved successfully", gin.H{"wards": wards})
}
