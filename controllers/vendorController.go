package controllers

import (
	"log"
	"net/http"

	"github.com/Abtahee-2104089/hackathon-CUET/middlewares"
	"github.com/Abtahee-2104089/hackathon-CUET/models"
	"github.com/Abtahee-2104089/hackathon-CUET/stores"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	msgVendorNotFound        = "Vendor not found"
	msgVendorProfileNotFound = "Vendor profile not found"
)

type VendorController struct {
	vendors stores.VendorStore
}

func NewVendorController(vendors stores.VendorStore) *VendorController {
	return &VendorController{vendors: vendors}
}

// GetVendors lists currently open vendors for browsing. Schedules and
// contact emails are not part of the listing.
func (vc *VendorController) GetVendors(ctx *gin.Context) {
	vendors, err := vc.vendors.ListOpen(ctx.Request.Context())
	if err != nil {
		log.Println("Get vendors error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	summaries := lo.Map(vendors, func(vendor models.Vendor, _ int) models.VendorSummary {
		return models.VendorSummary{
			ID:          vendor.ID,
			Name:        vendor.Name,
			Description: vendor.Description,
			Location:    vendor.Location,
			Logo:        vendor.Logo,
			IsOpen:      vendor.IsOpen,
			Rating:      vendor.Rating,
		}
	})

	ctx.JSON(http.StatusOK, summaries)
}

func (vc *VendorController) GetVendor(ctx *gin.Context) {
	vendorID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid vendor ID")
		return
	}

	vendor, err := vc.vendors.GetByID(ctx.Request.Context(), vendorID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgVendorNotFound)
		return
	}

	ctx.JSON(http.StatusOK, vendor)
}

func (vc *VendorController) GetMyProfile(ctx *gin.Context) {
	user, _ := middlewares.CurrentUser(ctx)

	vendor, err := vc.vendors.GetByUserID(ctx.Request.Context(), user.ID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgVendorProfileNotFound)
		return
	}

	ctx.JSON(http.StatusOK, vendor)
}

type UpdateVendorData struct {
	Name         string           `json:"name"`
	Description  *string          `json:"description"`
	Location     string           `json:"location"`
	Logo         string           `json:"logo"`
	ContactPhone string           `json:"contactPhone"`
	ContactEmail string           `json:"contactEmail"`
	Schedule     *models.Schedule `json:"schedule"`
}

// UpdateProfile applies a partial update to the caller's own vendor
// profile.
func (vc *VendorController) UpdateProfile(ctx *gin.Context) {
	var updateData UpdateVendorData
	if err := ctx.ShouldBindJSON(&updateData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, _ := middlewares.CurrentUser(ctx)

	vendor, err := vc.vendors.GetByUserID(ctx.Request.Context(), user.ID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgVendorProfileNotFound)
		return
	}

	if updateData.Name != "" {
		vendor.Name = updateData.Name
	}
	if updateData.Description != nil {
		vendor.Description = *updateData.Description
	}
	if updateData.Location != "" {
		vendor.Location = updateData.Location
	}
	if updateData.Logo != "" {
		vendor.Logo = updateData.Logo
	}
	if updateData.ContactPhone != "" {
		vendor.ContactPhone = updateData.ContactPhone
	}
	if updateData.ContactEmail != "" {
		vendor.ContactEmail = updateData.ContactEmail
	}
	if updateData.Schedule != nil {
		vendor.Schedule = *updateData.Schedule
	}

	if err := vc.vendors.Update(ctx.Request.Context(), vendor); err != nil {
		log.Println("Update vendor profile error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Vendor profile updated successfully",
		"vendor":  vendor,
	})
}

func (vc *VendorController) ToggleAvailability(ctx *gin.Context) {
	user, _ := middlewares.CurrentUser(ctx)

	vendor, err := vc.vendors.GetByUserID(ctx.Request.Context(), user.ID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgVendorProfileNotFound)
		return
	}

	isOpen := !vendor.IsOpen
	if err := vc.vendors.SetOpen(ctx.Request.Context(), vendor.ID, isOpen); err != nil {
		log.Println("Toggle availability error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	state := "closed"
	if isOpen {
		state = "open"
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Vendor is now " + state,
		"isOpen":  isOpen,
	})
}
