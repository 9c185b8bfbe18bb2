package utils

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// AllowedImageTypes defines the allowed image file extensions
var AllowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ValidateImageFile checks if the uploaded file is a valid image
func ValidateImageFile(file *multipart.FileHeader) error {
	if file.Size > MaxFileSize {
		return fmt.Errorf(ErrFileTooLarge)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !AllowedImageTypes[ext] {
		return fmt.Errorf(ErrInvalidFileType)
	}

	return nil
}

// ValidateImageFiles validates every header and stops at the first bad one
func ValidateImageFiles(files []*multipart.FileHeader) error {
	for _, file := range files {
		if err := ValidateImageFile(file); err != nil {
			return fmt.Errorf("%s: %w", file.Filename, err)
		}
	}
	return nil
}
