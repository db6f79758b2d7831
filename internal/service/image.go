package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/9jakitchen/backend/config"
)

// MaxUploadSize is the upload cap for recipe images.
const MaxUploadSize = 5 << 20

// PlaceholderImageURL is used for recipes created without an image.
const PlaceholderImageURL = "https://via.placeholder.com/400x300?text=Recipe+Image"

// recipeImageFolder prefixes every stored recipe image key.
const recipeImageFolder = "9jakitchen/recipes"

// Uploader stores a recipe image and returns its public URL.
type Uploader interface {
	UploadRecipeImage(ctx context.Context, r io.Reader, filename, contentType string, size int64) (string, error)
}

// ImageService stores recipe images in S3.
type ImageService struct {
	s3cfg *config.S3Config
}

func NewImageService(s3cfg *config.S3Config) *ImageService {
	return &ImageService{s3cfg: s3cfg}
}

// UploadRecipeImage writes the image under a random key and returns the
// object's public URL.
func (s *ImageService) UploadRecipeImage(ctx context.Context, r io.Reader, filename, contentType string, size int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("%s/%s%s", recipeImageFolder, uuid.NewString(), ext)

	_, err := s.s3cfg.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.s3cfg.BucketName),
		Key:           aws.String(key),
		Body:          r,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return s.s3cfg.PublicURL(key), nil
}
