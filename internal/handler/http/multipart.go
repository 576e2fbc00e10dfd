package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gongmyung/app-showcase/internal/store"
)

// formBlob reads one optional file part into a store.Blob. A missing part is
// not an error; routes that require the file check for nil themselves.
func formBlob(r *http.Request, field string) (*store.Blob, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return readBlob(file, header)
}

// formBlobs collects every file part under the given field name, preserving
// the order the parts arrived in.
func formBlobs(r *http.Request, field string) ([]store.Blob, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	headers := r.MultipartForm.File[field]
	blobs := make([]store.Blob, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}

		blob, err := readBlob(file, header)
		file.Close()
		if err != nil {
			return nil, err
		}

		blobs = append(blobs, *blob)
	}

	return blobs, nil
}

func readBlob(file multipart.File, header *multipart.FileHeader) (*store.Blob, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &store.Blob{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
