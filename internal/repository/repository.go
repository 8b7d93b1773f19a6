package repository

import "context"

// PreferenceRepository stores small user preferences as key/value pairs.
type PreferenceRepository interface {
	GetPreference(ctx context.Context, key string) (string, error)
	SetPreference(ctx context.Context, key, value string) error
	DeletePreference(ctx context.Context, key string) error
}
