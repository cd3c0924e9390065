package ml

import (
	"strconv"

	apperrors "cropadvisor/internal/errors"
)

// RawLabel is the classifier's raw output: either a human-readable label or an
// encoded class index that must be mapped through the label encoder.
type RawLabel interface {
	rawLabel()
}

// DirectLabel is a prediction the model emitted as a ready-to-use string.
type DirectLabel string

// EncodedLabel is a prediction emitted as a class index.
type EncodedLabel int

func (DirectLabel) rawLabel()  {}
func (EncodedLabel) rawLabel() {}

// LabelEncoder maps encoded class indices back to label strings. It is the
// JSON-exported companion artifact of the upstream training pipeline.
type LabelEncoder struct {
	Classes []string `json:"classes"`
}

// LabelResolver turns raw classifier output into a crop label. The encoder is
// optional: when it is missing or the index is out of range the resolver falls
// back to the decimal form of the raw index instead of failing the request.
type LabelResolver struct {
	encoder *LabelEncoder
}

// NewLabelResolver creates a resolver. encoder may be nil.
func NewLabelResolver(encoder *LabelEncoder) *LabelResolver {
	return &LabelResolver{encoder: encoder}
}

// Resolve maps raw output to a label. When the fallback path is taken the
// returned error is ErrEncoderUnavailable; the label is still usable and
// callers are expected to log rather than fail.
func (r *LabelResolver) Resolve(raw RawLabel) (string, error) {
	switch v := raw.(type) {
	case DirectLabel:
		return string(v), nil
	case EncodedLabel:
		if r.encoder == nil || int(v) < 0 || int(v) >= len(r.encoder.Classes) {
			return strconv.Itoa(int(v)), apperrors.ErrEncoderUnavailable
		}
		return r.encoder.Classes[v], nil
	default:
		return "", apperrors.ErrPredictionFailure
	}
}
