package texture

import (
	"errors"
	"testing"
)

type fakeUploader struct {
	next    uint32
	bound   map[int]uint32
	deleted []uint32
	failUp  bool
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{next: 100, bound: make(map[int]uint32)}
}

func (f *fakeUploader) Upload(pixels []byte, width, height, channels int) (uint32, error) {
	if f.failUp {
		return 0, errors.New("upload rejected")
	}
	f.next++
	return f.next, nil
}

func (f *fakeUploader) Bind(unit int, handle uint32) {
	f.bound[unit] = handle
}

func (f *fakeUploader) Delete(handle uint32) {
	f.deleted = append(f.deleted, handle)
}

func decodeChannels(channels int) DecodeFunc {
	return func(path string) ([]byte, int, int, int, error) {
		return make([]byte, 2*2*channels), 2, 2, channels, nil
	}
}

func decodeFail(path string) ([]byte, int, int, int, error) {
	return nil, 0, 0, 0, errors.New("no such file")
}

func TestLoadAcceptedChannels(t *testing.T) {
	for _, channels := range []int{3, 4} {
		r := NewRegistry(decodeChannels(channels), newFakeUploader())
		if !r.Load("img.jpg", "tag") {
			t.Errorf("channels=%d: load should succeed", channels)
		}
		if r.Count() != 1 {
			t.Errorf("channels=%d: count=%d, want 1", channels, r.Count())
		}
	}
}

func TestLoadRejectedChannels(t *testing.T) {
	for _, channels := range []int{1, 2, 5} {
		r := NewRegistry(decodeChannels(channels), newFakeUploader())
		if r.Load("img.jpg", "tag") {
			t.Errorf("channels=%d: load should fail", channels)
		}
		if r.Count() != 0 {
			t.Errorf("channels=%d: registry should stay empty", channels)
		}
	}
}

func TestLoadDecodeFailureLeavesRegistryUnchanged(t *testing.T) {
	r := NewRegistry(decodeFail, newFakeUploader())
	if r.Load("missing.jpg", "tag") {
		t.Error("load should fail on decode error")
	}
	if r.Count() != 0 {
		t.Errorf("count=%d, want 0", r.Count())
	}
}

func TestLoadUploadFailure(t *testing.T) {
	up := newFakeUploader()
	up.failUp = true
	r := NewRegistry(decodeChannels(4), up)
	if r.Load("img.jpg", "tag") {
		t.Error("load should fail on upload error")
	}
}

func TestDuplicateTagFirstWins(t *testing.T) {
	r := NewRegistry(decodeChannels(4), newFakeUploader())
	r.Load("a.jpg", "dup")
	r.Load("b.jpg", "dup")

	if r.Count() != 2 {
		t.Fatalf("count=%d, want 2", r.Count())
	}
	slot, ok := r.FindSlot("dup")
	if !ok || slot != 0 {
		t.Errorf("FindSlot(dup)=(%d,%v), want slot 0", slot, ok)
	}
}

func TestSlotAssignmentIsLoadOrder(t *testing.T) {
	r := NewRegistry(decodeChannels(4), newFakeUploader())
	r.Load("a.jpg", "first")
	r.Load("b.jpg", "second")
	r.Load("c.jpg", "third")

	for i, tag := range []string{"first", "second", "third"} {
		slot, ok := r.FindSlot(tag)
		if !ok || slot != i {
			t.Errorf("FindSlot(%s)=(%d,%v), want %d", tag, slot, ok, i)
		}
	}
}

func TestCapacityLimit(t *testing.T) {
	r := NewRegistry(decodeChannels(4), newFakeUploader())
	for i := 0; i < Capacity; i++ {
		if !r.Load("img.jpg", "tag") {
			t.Fatalf("load %d should succeed", i)
		}
	}
	if r.Load("img.jpg", "overflow") {
		t.Error("load past capacity should fail")
	}
	if r.Count() != Capacity {
		t.Errorf("count=%d, want %d", r.Count(), Capacity)
	}
}

func TestBindAllUsesSlotAsUnit(t *testing.T) {
	up := newFakeUploader()
	r := NewRegistry(decodeChannels(4), up)
	r.Load("a.jpg", "a")
	r.Load("b.jpg", "b")

	r.BindAll()

	ha, _ := r.FindHandle("a")
	hb, _ := r.FindHandle("b")
	if up.bound[0] != ha || up.bound[1] != hb {
		t.Errorf("bound=%v, want unit 0 -> %d, unit 1 -> %d", up.bound, ha, hb)
	}
}

func TestBindUnknownTag(t *testing.T) {
	r := NewRegistry(decodeChannels(4), newFakeUploader())
	if _, ok := r.Bind("nope"); ok {
		t.Error("Bind of unknown tag should report false")
	}
}

func TestReleaseAllIdempotent(t *testing.T) {
	up := newFakeUploader()
	r := NewRegistry(decodeChannels(4), up)
	r.Load("a.jpg", "a")
	r.Load("b.jpg", "b")

	r.ReleaseAll()
	if r.Count() != 0 {
		t.Errorf("count after release=%d, want 0", r.Count())
	}
	if len(up.deleted) != 2 {
		t.Errorf("deleted %d handles, want 2", len(up.deleted))
	}

	// Second release must be a no-op
	r.ReleaseAll()
	if len(up.deleted) != 2 {
		t.Errorf("second release deleted again: %d handles", len(up.deleted))
	}
}
