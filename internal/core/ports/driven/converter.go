package driven

import (
	"context"

	"github.com/custodia-labs/jc/internal/core/domain"
)

// Converter turns the raw text output of one command into structured records.
// Implementations are stateless: nothing is retained between calls and no
// reference to the input outlives Convert.
type Converter interface {
	// Descriptor returns the converter's static metadata without converting anything.
	// A nil descriptor is a registry configuration defect.
	Descriptor() *domain.ConverterDescriptor

	// Convert consumes the complete raw text once.
	// With opts.Raw unset the converter also applies its normalisation step
	// (type coercion, canonical field names). With opts.Quiet set it must not
	// emit warnings. It returns an error wrapping domain.ErrUnparsable only when
	// the text cannot be interpreted as the expected format at all.
	Convert(ctx context.Context, data string, opts domain.ConvertOptions) (domain.Result, error)
}
