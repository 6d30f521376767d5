package interfaces

import "context"

// IObjectStore abstracts the object storage backend holding uploaded
// picture bytes.
//
// Put and ResolveURL are separate steps on purpose: an upload only
// counts as successful when both the byte write and the public URL
// resolution succeed.
type IObjectStore interface {
	Put(ctx context.Context, key string, contentType string, body []byte) error
	ResolveURL(ctx context.Context, key string) (string, error)
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}
