package httpclient

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/cockroachdb/errors"
)

// Multipart is a multipart/form-data body. Fields are written before files, each in insertion order.
type Multipart struct {
	fields []multipartField
	files  []MultipartFile
}

type multipartField struct {
	name  string
	value string
}

type MultipartFile struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

func NewMultipart() *Multipart {
	return &Multipart{}
}

func (m *Multipart) AddField(name, value string) *Multipart {
	m.fields = append(m.fields, multipartField{name: name, value: value})
	return m
}

func (m *Multipart) AddFile(file MultipartFile) *Multipart {
	m.files = append(m.files, file)
	return m
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Encode returns the encoded body and its content type, including the boundary.
func (m *Multipart) Encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range m.fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", errors.Wrapf(err, "can't write field %s", f.name)
		}
	}
	for _, f := range m.files {
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(f.Field), quoteEscaper.Replace(f.Filename)))
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", errors.Wrapf(err, "can't create part %s", f.Field)
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, "", errors.Wrapf(err, "can't write file %s", f.Filename)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "can't close multipart writer")
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
