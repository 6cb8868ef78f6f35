package handler

import (
	"net/http"

	"anoa.com/yayasanalhikmah/pkg/response"
	"anoa.com/yayasanalhikmah/pkg/storage"
	"github.com/gin-gonic/gin"
)

var uploadFolders = map[string]string{
	"students":  "students",
	"teachers":  "teachers",
	"graduates": "graduates",
	"website":   "website",
}

type UploadHandler struct {
	imageStorage storage.ImageStorage
	baseFolder   string
}

func NewUploadHandler(imageStorage storage.ImageStorage, baseFolder string) *UploadHandler {
	return &UploadHandler{imageStorage: imageStorage, baseFolder: baseFolder}
}

// UploadPhoto stores an image and returns its URL. The entity path
// segment decides the storage folder so deletes can be scoped later.
func (h *UploadHandler) UploadPhoto(c *gin.Context) {
	folder, ok := uploadFolders[c.Param("entity")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "jenis unggahan tidak dikenal"})
		return
	}
	if h.baseFolder != "" {
		folder = h.baseFolder + "/" + folder
	}

	if h.imageStorage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "penyimpanan foto belum dikonfigurasi"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "foto wajib diunggah"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "gagal memuat foto"})
		return
	}
	defer file.Close()

	url, err := h.imageStorage.UploadImage(c.Request.Context(), file, folder, fileHeader.Filename)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
