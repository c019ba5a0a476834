package cloudinary

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
)

// Client uploads NGO logos and event images.
type Client interface {
	UploadImage(ctx context.Context, file io.Reader, preset Preset, publicID string) (*Upload, error)
}

type Upload struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	PublicID     string `json:"publicId"`
}

// Preset is the folder and eager transformation for one kind of image.
type Preset struct {
	Folder     string
	Eager      string
	ThumbWidth int
}

const ThumbWidth = 200

var (
	LogoPreset  = Preset{Folder: "mindconnect/logos", Eager: "q_auto,f_auto,w_400,h_400,c_fill", ThumbWidth: 96}
	EventPreset = Preset{Folder: "mindconnect/events", Eager: "q_auto,f_auto,w_1200,c_limit", ThumbWidth: ThumbWidth}
)

// BuildOptimizedImageURL returns a Cloudinary URL with transformations for optimized delivery.
func BuildOptimizedImageURL(cloudName, publicID string, width int) string {
	if width <= 0 {
		width = ThumbWidth
	}
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/q_auto,f_auto,w_%d,c_fill/%s",
		cloudName, width, publicID)
}

var eagerAsyncFalse = false

type clientImpl struct {
	cloudName string
	uploader  *uploader.API
}

// UploadImage uploads an image with the preset's eager optimizations.
func (c *clientImpl) UploadImage(ctx context.Context, file io.Reader, preset Preset, publicID string) (*Upload, error) {
	result, err := c.uploader.Upload(ctx, file, uploader.UploadParams{
		Folder:     preset.Folder,
		PublicID:   publicID,
		Eager:      preset.Eager,
		EagerAsync: &eagerAsyncFalse,
	})
	if err != nil {
		return nil, err
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary: %s", result.Error.Message)
	}
	up := &Upload{URL: result.SecureURL, PublicID: result.PublicID}
	if len(result.Eager) > 0 {
		up.URL = result.Eager[0].SecureURL
	}
	up.ThumbnailURL = BuildOptimizedImageURL(c.cloudName, result.PublicID, preset.ThumbWidth)
	return up, nil
}

// NewClientFromParams builds a Client from Cloudinary cloud name, API key, and secret.
func NewClientFromParams(cloudName, apiKey, apiSecret string) (Client, error) {
	cfg, err := config.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	up, err := uploader.NewWithConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	return &clientImpl{
		cloudName: cloudName,
		uploader:  up,
	}, nil
}
