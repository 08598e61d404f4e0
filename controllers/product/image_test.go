package productcontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/4GeeksAcademy/Ecommerce-Project/store/storetest"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	now := time.Unix(1700000000, 0)
	assert.Equal(t, "1700000000_summer_tee.jpg", fileName("summer tee.jpg.jpg", now))
	assert.Equal(t, "1700000000_a_b_.png", fileName("../a$b!.PNG", now))
}

func postImage(t *testing.T, r http.Handler, path, filename string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("not really an image"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadProductImage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := storetest.New(t)
	product := seedCatalog(t, s)
	im := Images{Dir: t.TempDir(), BaseURL: "https://shop.example.com/"}

	r := gin.New()
	r.POST("/products/:id/image", UploadProductImage(s, im))
	path := fmt.Sprintf("/products/%d/image", product.ID)

	w := postImage(t, r, path, "front.png")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var first map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	firstURL := first["image_url"].(string)
	assert.True(t, strings.HasPrefix(firstURL, "https://shop.example.com/uploads/products/"), firstURL)

	firstFile, ok := im.localPath(firstURL)
	require.True(t, ok)
	assert.FileExists(t, firstFile)

	// Replacing the image removes the old file.
	w = postImage(t, r, path, "back.png")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NoFileExists(t, firstFile)
	entries, err := os.ReadDir(filepath.Join(im.Dir, "products"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	assert.Equal(t, http.StatusBadRequest, postImage(t, r, path, "notes.txt").Code)
	assert.Equal(t, http.StatusBadRequest, postImage(t, r, "/products/abc/image", "a.png").Code)
}
