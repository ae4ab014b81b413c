package llm

import "context"

// Purpose names why a request was made. It is logged with every call.
type Purpose string

const (
	PurposeWordNotes Purpose = "word-notes"
	// PurposeUnlabeled is reported for contexts without a purpose.
	PurposeUnlabeled Purpose = "unlabeled"
)

type purposeKey struct{}

// WithPurpose returns a copy of ctx carrying p.
func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey{}, p)
}

// PurposeOf returns the purpose carried by ctx.
func PurposeOf(ctx context.Context) Purpose {
	if p, ok := ctx.Value(purposeKey{}).(Purpose); ok && p != "" {
		return p
	}
	return PurposeUnlabeled
}
