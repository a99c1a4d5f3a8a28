package source

import (
	"context"
	"fmt"
)

// fakeGetter serves canned documents keyed by URL.
type fakeGetter struct {
	docs  map[string]string
	calls []string
}

func (f *fakeGetter) Get(_ context.Context, url string) (string, error) {
	f.calls = append(f.calls, url)
	body, ok := f.docs[url]
	if !ok {
		return "", fmt.Errorf("no document for %s", url)
	}
	return body, nil
}
