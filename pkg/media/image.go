package media

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

const MaxImageBytes = 5 << 20

var allowedTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

// Image is an uploaded file already read into memory and sniffed.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (i *Image) Size() int { return len(i.Data) }

// ReadImage loads a multipart file, enforcing the size limit and the allowed
// content types. The type is detected from the bytes, not the client header.
func ReadImage(fh *multipart.FileHeader) (*Image, error) {
	if fh.Size > MaxImageBytes {
		return nil, utils.ErrImageTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", utils.ErrInvalidImage, err.Error())
	}
	defer f.Close()

	return readImage(fh.Filename, f)
}

func readImage(name string, r io.Reader) (*Image, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", utils.ErrInvalidImage, err.Error())
	}
	if len(data) > MaxImageBytes {
		return nil, utils.ErrImageTooLarge
	}
	if len(data) == 0 {
		return nil, utils.ErrImageRequired
	}

	detected := mimetype.Detect(data)
	for _, t := range allowedTypes {
		if detected.Is(t) {
			return &Image{Filename: name, ContentType: t, Data: data}, nil
		}
	}
	return nil, fmt.Errorf("%w: got %s", utils.ErrInvalidImage, detected.String())
}
