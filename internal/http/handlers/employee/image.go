package employee

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/employee-dashboard/internal/utils/response"
	"github.com/aanand-mishra/employee-dashboard/internal/validation"
)

// multipart framing on top of the file itself
const uploadOverhead = 1 << 20

// UploadImage handles POST /api/images (multipart/form-data, field "image").
//
// Success response (200 OK):
//
//	{ "image": "data:image/png;base64,..." }
//
// On failure the response carries an "image" field error; the client
// keeps its current photo and may still submit the rest of the form.
func UploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, validation.MaxImageSize+uploadOverhead)

		file, header, err := r.FormFile("image")
		if err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				writeImageError(w, validation.ErrImageTooLarge)
				return
			}
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		defer file.Close()

		uri, err := validation.EncodeImage(r.Context(), file, header.Size)
		if err != nil {
			slog.Info("image rejected",
				slog.String("filename", header.Filename),
				slog.Int64("size", header.Size),
				slog.String("error", err.Error()))
			writeImageError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, map[string]string{"image": uri})
	}
}

func writeImageError(w http.ResponseWriter, err error) {
	response.WriteJSON(w, http.StatusBadRequest,
		response.ValidationError(validation.Errors{"image": validation.ImageError(err)}))
}
