// Package intake validates uploaded files and turns them into submissions
// ready for storage and extraction.
package intake

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/docuinsight/document-insight-api/internal/models"
	"github.com/docuinsight/document-insight-api/internal/utils"
)

// supportedTypes maps accepted file extensions to their MIME types. Anything
// outside this set is rejected before any storage or service call happens.
var supportedTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".pdf":  "application/pdf",
}

// New validates the uploaded file and builds a DocumentSubmission with a
// freshly generated object key. Identical files get distinct keys, so two
// submissions of the same document are fully independent runs.
func New(filename string, data []byte) (*models.DocumentSubmission, error) {
	if len(data) == 0 {
		return nil, utils.NewBadRequestError("Uploaded file is empty")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := supportedTypes[ext]
	if !ok {
		return nil, utils.NewUnsupportedFileTypeError(
			fmt.Sprintf("Unsupported file type %q. Only PNG, JPG, JPEG and PDF are allowed", ext))
	}

	id := utils.GenerateID()
	return &models.DocumentSubmission{
		ID:          id,
		Filename:    filename,
		ContentType: contentType,
		ObjectKey:   fmt.Sprintf("uploads/%s%s", id, ext),
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

// IsPDF reports whether the submission is a PDF, which gets extra local
// validation (page count) before upload.
func IsPDF(sub *models.DocumentSubmission) bool {
	return sub.ContentType == "application/pdf"
}
