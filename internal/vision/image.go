package vision

import (
	"image"
	"sync"

	"github.com/google/uuid"
)

// Image is an opaque handle to a decoded pixel buffer.
//
// Handles are produced by Decode and by every transform in this package. A
// transform never modifies its input; it always returns a new handle.
//
// Colour images are kept with three channels in BGR order (channel 0 is blue).
// An HSV image produced by ToHSV stores H, S and V in channels 0, 1 and 2, so
// colour bounds are always compared against channels in index order.
// Grayscale images have a single channel.
type Image struct {
	pix image.Image
}

// NewImage wraps a decoded image in a handle. It returns nil for a nil image.
func NewImage(pix image.Image) *Image {
	if pix == nil {
		return nil
	}
	return &Image{pix: pix}
}

// Pixels returns the underlying image. Callers must not modify it.
func (img *Image) Pixels() image.Image {
	return img.pix
}

// Bounds returns the image bounds.
func (img *Image) Bounds() image.Rectangle {
	return img.pix.Bounds()
}

// Channels returns 1 for grayscale images and 3 otherwise.
func (img *Image) Channels() int {
	if _, ok := img.pix.(*image.Gray); ok {
		return 1
	}
	return 3
}

// Store keeps image handles reachable by string ID so they can cross a
// process boundary (the keyword server hands IDs to the runner instead of
// pixel data).
//
// Store is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Stored images remain in memory until explicitly removed via Evict() or
// Clear(). A test run that produces many intermediate images should release
// the ones it no longer needs.
type Store struct {
	mu     sync.RWMutex
	images map[string]*Image
	ids    map[*Image]string
}

// NewStore creates an empty handle store.
func NewStore() *Store {
	return &Store{
		images: make(map[string]*Image),
		ids:    make(map[*Image]string),
	}
}

// Put registers a handle and returns its ID. Registering the same handle
// twice returns the ID it was first given.
func (s *Store) Put(img *Image) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.ids[img]; ok {
		return id
	}
	id := "img-" + uuid.NewString()
	s.images[id] = img
	s.ids[img] = id
	return id
}

// Get looks up a handle by ID.
func (s *Store) Get(id string) (*Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[id]
	return img, ok
}

// Evict removes a handle from the store. It reports whether the ID was known.
func (s *Store) Evict(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	img, ok := s.images[id]
	if !ok {
		return false
	}
	delete(s.images, id)
	delete(s.ids, img)
	return true
}

// Clear removes every handle from the store.
func (s *Store) Clear() {
	s.mu.Lock()
	s.images = make(map[string]*Image)
	s.ids = make(map[*Image]string)
	s.mu.Unlock()
}

// Len returns the number of stored handles.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}
