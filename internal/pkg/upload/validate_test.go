package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImageBySniff(t *testing.T) {
	t.Parallel()

	pngHeader := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

	tests := []struct {
		name     string
		filename string
		head     []byte
		wantMime string
		wantErr  bool
	}{
		{
			name:     "png",
			filename: "photo.png",
			head:     pngHeader,
			wantMime: "image/png",
		},
		{
			name:     "jpeg",
			filename: "photo.jpg",
			head:     []byte{0xFF, 0xD8, 0xFF, 0xE0},
			wantMime: "image/jpeg",
		},
		{
			name:     "gif",
			filename: "photo.gif",
			head:     []byte("GIF89a"),
			wantMime: "image/gif",
		},
		{
			name:     "webp",
			filename: "photo.webp",
			head:     append([]byte("RIFF\x00\x00\x00\x00WEBP"), []byte("VP8 ")...),
			wantMime: "image/webp",
		},
		{
			name:     "uppercase extension",
			filename: "PHOTO.PNG",
			head:     pngHeader,
			wantMime: "image/png",
		},
		{
			name:     "svg extension rejected",
			filename: "image.svg",
			head:     []byte("<svg xmlns=\"http://www.w3.org/2000/svg\"/>"),
			wantErr:  true,
		},
		{
			name:     "html content rejected",
			filename: "page.png",
			head:     []byte("<html><body>hi</body></html>"),
			wantErr:  true,
		},
		{
			name:     "plain text rejected",
			filename: "notes.png",
			head:     []byte("just some text"),
			wantErr:  true,
		},
		{
			name:     "executable extension rejected",
			filename: "payload.exe",
			head:     pngHeader,
			wantErr:  true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mime, err := ValidateImageBySniff(tc.filename, tc.head)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantMime, mime)
		})
	}
}
