package handlers

import (
	"net/http"

	"visaflow/services/banner"

	"github.com/gin-gonic/gin"
)

// GetBannersHandler lists all banners.
func GetBannersHandler(svc banner.BannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bs, err := svc.GetBanners()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, bs)
	}
}

// CreateBannerHandler creates a banner from a multipart form. The image
// part is optional.
func CreateBannerHandler(svc banner.BannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		input := banner.NewBanner{
			Title: c.PostForm("title"),
			Text:  c.PostForm("text"),
			Link:  c.PostForm("link"),
		}

		if fh, err := c.FormFile("image"); err == nil {
			file, err := fh.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image upload: " + err.Error()})
				return
			}
			defer file.Close()
			input.Image = file
		}

		b, err := svc.CreateBanner(c.Request.Context(), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, b)
	}
}

// UpdateBannerHandler applies a partial banner update; a new image replaces
// the old one.
func UpdateBannerHandler(svc banner.BannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := banner.BannerUpdateRequest{
			ID:    c.Param("id"),
			Title: c.PostForm("title"),
			Text:  c.PostForm("text"),
			Link:  c.PostForm("link"),
		}

		if fh, err := c.FormFile("image"); err == nil {
			file, err := fh.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image upload: " + err.Error()})
				return
			}
			defer file.Close()
			req.Image = file
		}

		b, err := svc.UpdateBanner(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// DeleteBannerHandler removes a banner and its hosted image.
func DeleteBannerHandler(svc banner.BannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteBanner(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "banner deleted"})
	}
}
