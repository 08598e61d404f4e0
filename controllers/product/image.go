package productcontroller

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/4GeeksAcademy/Ecommerce-Project/store"
	"github.com/gin-gonic/gin"
)

var unsafeFileChars = regexp.MustCompile(`[^\w\-.]`)

var imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}

// Images maps product images between the upload folder and their public URLs.
type Images struct {
	Dir     string // served as /uploads
	BaseURL string // prefix of stored image URLs, may be empty
}

func (im Images) url(name string) string {
	return fmt.Sprintf("%s/uploads/products/%s", strings.TrimRight(im.BaseURL, "/"), name)
}

// localPath returns the file behind an image URL this server produced.
func (im Images) localPath(url string) (string, bool) {
	prefix := im.url("")
	name := strings.TrimPrefix(url, prefix)
	if !strings.HasPrefix(url, prefix) || name == "" || strings.ContainsAny(name, `/\`) {
		return "", false
	}
	return filepath.Join(im.Dir, "products", name), true
}

// fileName keeps a cleaned base name with a timestamp prefix.
func fileName(original string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))

	// Remove duplicate extensions like ".jpg.jpg"
	for imageExts[strings.ToLower(filepath.Ext(base))] {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	base = unsafeFileChars.ReplaceAllString(strings.ReplaceAll(base, " ", "_"), "_")
	return fmt.Sprintf("%d_%s%s", now.Unix(), base, ext)
}

// POST /api/admin/products/:id/image
// Stores the uploaded "image" file and points the product's image_url at it.
// A previous upload of the same product is removed from disk.
func UploadProductImage(s *store.Store, im Images) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
			return
		}
		if !imageExts[strings.ToLower(filepath.Ext(fileHeader.Filename))] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image type"})
			return
		}

		product, err := s.GetProduct(c.Request.Context(), id)
		if err != nil {
			_ = c.Error(err)
			return
		}

		dir := filepath.Join(im.Dir, "products")
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			_ = c.Error(fmt.Errorf("create upload folder: %w", err))
			return
		}
		name := fileName(fileHeader.Filename, time.Now())
		if err := c.SaveUploadedFile(fileHeader, filepath.Join(dir, name)); err != nil {
			_ = c.Error(fmt.Errorf("save upload: %w", err))
			return
		}

		var previous string
		if product.ImageURL != nil {
			previous = *product.ImageURL
		}
		url := im.url(name)
		product.ImageURL = &url
		if err := s.SaveProduct(c.Request.Context(), product); err != nil {
			_ = os.Remove(filepath.Join(dir, name))
			_ = c.Error(err)
			return
		}

		if path, ok := im.localPath(previous); ok {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				log.Printf("❌ Failed to delete old image %s: %v", path, err)
			}
		}

		lookup, err := s.IndexForProducts(c.Request.Context(), *product)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, product.Serialize(lookup, false))
	}
}
