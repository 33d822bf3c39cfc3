package utils

import (
	"context"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadAvatar re-hosts an avatar image on Cloudinary and returns the secure
// delivery URL. When Cloudinary is not configured the source is returned
// unchanged, so avatars keep working in minimal deployments.
func UploadAvatar(source string) (string, error) {
	if os.Getenv("CLOUDINARY_CLOUD_NAME") == "" {
		return source, nil
	}

	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"))
	if err != nil {
		return "", err
	}

	resp, err := cld.Upload.Upload(context.Background(), source, uploader.UploadParams{
		Folder:         "avatars",
		Transformation: "c_thumb,w_200,h_200", // Resize profile pictures
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
