package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Abtahee-2104089/hackathon-CUET/middlewares"
	"github.com/Abtahee-2104089/hackathon-CUET/models"
	"github.com/Abtahee-2104089/hackathon-CUET/stores"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	msgMenuItemNotFound      = "Menu item not found"
	msgMenuItemNotOwned      = "Not authorized to update this menu item"
	defaultPreparationTime   = 15
	defaultMenuItemImage     = "https://via.placeholder.com/300"
)

type MenuController struct {
	menu    stores.MenuStore
	vendors stores.VendorStore
}

func NewMenuController(menu stores.MenuStore, vendors stores.VendorStore) *MenuController {
	return &MenuController{menu: menu, vendors: vendors}
}

// GetVendorMenu lists the available items of a vendor for browsing.
func (mc *MenuController) GetVendorMenu(ctx *gin.Context) {
	vendorID, err := primitive.ObjectIDFromHex(ctx.Param("vendorId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid vendor ID")
		return
	}

	items, err := mc.menu.ListByVendor(ctx.Request.Context(), vendorID, true)
	if err != nil {
		log.Println("Get menu items error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// GetMyMenu lists every item of the caller's own menu, available or not.
func (mc *MenuController) GetMyMenu(ctx *gin.Context) {
	vendor, ok := mc.requireVendorProfile(ctx)
	if !ok {
		return
	}

	items, err := mc.menu.ListByVendor(ctx.Request.Context(), vendor.ID, false)
	if err != nil {
		log.Println("Get vendor menu error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

type MenuItemData struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	Price           *float64 `json:"price" binding:"required,gte=0"`
	Image           string   `json:"image"`
	Category        string   `json:"category" binding:"required"`
	IsAvailable     *bool    `json:"isAvailable"`
	PreparationTime *int     `json:"preparationTime" binding:"omitempty,gte=0"`
	Tags            []string `json:"tags"`
	IsVeg           bool     `json:"isVeg"`
	IsSpicy         bool     `json:"isSpicy"`
}

func (mc *MenuController) CreateMenuItem(ctx *gin.Context) {
	var itemData MenuItemData
	if err := ctx.ShouldBindJSON(&itemData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	vendor, ok := mc.requireVendorProfile(ctx)
	if !ok {
		return
	}

	item := models.MenuItem{
		Vendor:          vendor.ID,
		Name:            itemData.Name,
		Description:     itemData.Description,
		Price:           *itemData.Price,
		Image:           itemData.Image,
		Category:        itemData.Category,
		IsAvailable:     true,
		PreparationTime: defaultPreparationTime,
		Tags:            itemData.Tags,
		IsVeg:           itemData.IsVeg,
		IsSpicy:         itemData.IsSpicy,
	}
	if itemData.IsAvailable != nil {
		item.IsAvailable = *itemData.IsAvailable
	}
	if itemData.PreparationTime != nil {
		item.PreparationTime = *itemData.PreparationTime
	}
	if item.Image == "" {
		item.Image = defaultMenuItemImage
	}

	if err := mc.menu.Create(ctx.Request.Context(), &item); err != nil {
		log.Println("Add menu item error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":  "Menu item added successfully",
		"menuItem": item,
	})
}

type UpdateMenuItemData struct {
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price" binding:"omitempty,gte=0"`
	Image           string   `json:"image"`
	Category        string   `json:"category"`
	IsAvailable     *bool    `json:"isAvailable"`
	PreparationTime *int     `json:"preparationTime" binding:"omitempty,gte=0"`
	Tags            []string `json:"tags"`
	IsVeg           *bool    `json:"isVeg"`
	IsSpicy         *bool    `json:"isSpicy"`
}

func (mc *MenuController) UpdateMenuItem(ctx *gin.Context) {
	var updateData UpdateMenuItemData
	if err := ctx.ShouldBindJSON(&updateData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	item, ok := mc.requireOwnedMenuItem(ctx)
	if !ok {
		return
	}

	if updateData.Name != "" {
		item.Name = updateData.Name
	}
	if updateData.Description != nil {
		item.Description = *updateData.Description
	}
	if updateData.Price != nil {
		item.Price = *updateData.Price
	}
	if updateData.Image != "" {
		item.Image = updateData.Image
	}
	if updateData.Category != "" {
		item.Category = updateData.Category
	}
	if updateData.IsAvailable != nil {
		item.IsAvailable = *updateData.IsAvailable
	}
	if updateData.PreparationTime != nil {
		item.PreparationTime = *updateData.PreparationTime
	}
	if updateData.Tags != nil {
		item.Tags = updateData.Tags
	}
	if updateData.IsVeg != nil {
		item.IsVeg = *updateData.IsVeg
	}
	if updateData.IsSpicy != nil {
		item.IsSpicy = *updateData.IsSpicy
	}

	if err := mc.menu.Update(ctx.Request.Context(), item); err != nil {
		log.Println("Update menu item error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":  "Menu item updated successfully",
		"menuItem": item,
	})
}

func (mc *MenuController) DeleteMenuItem(ctx *gin.Context) {
	item, ok := mc.requireOwnedMenuItem(ctx)
	if !ok {
		return
	}

	if err := mc.menu.Delete(ctx.Request.Context(), item.ID); err != nil {
		log.Println("Delete menu item error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}

func (mc *MenuController) ToggleItemAvailability(ctx *gin.Context) {
	item, ok := mc.requireOwnedMenuItem(ctx)
	if !ok {
		return
	}

	isAvailable := !item.IsAvailable
	if err := mc.menu.SetAvailability(ctx.Request.Context(), item.ID, isAvailable); err != nil {
		log.Println("Toggle menu item availability error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	state := "unavailable"
	if isAvailable {
		state = "available"
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":     "Menu item is now " + state,
		"isAvailable": isAvailable,
	})
}

// getAWSUploader returns a configured S3 uploader.
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadMenuImages uploads menu item images to S3 and returns their
// public URLs; vendors set the returned URL as an item's image field.
func (mc *MenuController) UploadMenuImages(ctx *gin.Context) {
	vendor, ok := mc.requireVendorProfile(ctx)
	if !ok {
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid form data")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "No files uploaded")
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		log.Println("AWS configuration error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to configure AWS")
		return
	}

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		bucket = "campuseats"
	}

	var uploadedUrls []string
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		// Unique filename to prevent overwrites
		uniqueFilename := fmt.Sprintf("%s-%s-%s", vendor.ID.Hex(), time.Now().Format("20060102150405"), file.Filename)

		result, uploadErr := uploader.Upload(ctx.Request.Context(), &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(uniqueFilename),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		f.Close()

		if uploadErr != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		uploadedUrls = append(uploadedUrls, result.Location)
	}

	response := gin.H{
		"message": "Files processed",
		"urls":    uploadedUrls,
	}
	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	ctx.JSON(http.StatusOK, response)
}

// requireVendorProfile loads the caller's vendor profile, responding
// with 404 when none exists.
func (mc *MenuController) requireVendorProfile(ctx *gin.Context) (*models.Vendor, bool) {
	user, _ := middlewares.CurrentUser(ctx)

	vendor, err := mc.vendors.GetByUserID(ctx.Request.Context(), user.ID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgVendorProfileNotFound)
		return nil, false
	}
	return vendor, true
}

// requireOwnedMenuItem resolves the :id path parameter to a menu item
// owned by the caller's vendor profile.
func (mc *MenuController) requireOwnedMenuItem(ctx *gin.Context) (*models.MenuItem, bool) {
	vendor, ok := mc.requireVendorProfile(ctx)
	if !ok {
		return nil, false
	}

	itemID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid menu item ID")
		return nil, false
	}

	item, err := mc.menu.GetByID(ctx.Request.Context(), itemID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgMenuItemNotFound)
		return nil, false
	}

	if item.Vendor != vendor.ID {
		sendErrorResponse(ctx, http.StatusForbidden, msgMenuItemNotOwned)
		return nil, false
	}
	return item, true
}
