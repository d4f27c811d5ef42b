package encodeservice

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// EncodeService encodes strings into percent-hex under named encodings.
type EncodeService struct {
	registry *Registry
	catalog  *Catalog
	log      logrus.FieldLogger
}

// NewEncodeService creates and returns a new EncodeService backed by the
// default registry. A nil logger falls back to the logrus standard logger.
func NewEncodeService(log logrus.FieldLogger) *EncodeService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	registry := NewRegistry()
	return &EncodeService{
		registry: registry,
		catalog:  NewCatalog(registry),
		log:      log,
	}
}

// Registry returns the registry the service resolves names against.
func (s *EncodeService) Registry() *Registry {
	return s.registry
}

// Catalog returns the encodings used when every encoder is requested.
func (s *EncodeService) Catalog() *Catalog {
	return s.catalog
}

// Encode returns the percent-hex form of text under the named encoding.
//
// Unknown names yield an error wrapping ErrUnresolvableEncoding. Codecs that
// only accept raw bytes are retried with the UTF-8 bytes of text. Any other
// failure is returned as a *ConstraintError.
func (s *EncodeService) Encode(text, name string) (string, error) {
	codec, err := s.registry.Lookup(name)
	if err != nil {
		return "", err
	}

	out, err := codec.EncodeText(text)
	if errors.Is(err, ErrBytesExpected) {
		out, err = codec.EncodeBytes([]byte(text))
	}
	if err != nil {
		return "", &ConstraintError{Encoding: name, Err: err}
	}

	return PercentHex(out), nil
}
