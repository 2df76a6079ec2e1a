package domain

import "testing"

func TestUser_Clone_DetachesSlices(t *testing.T) {
	orig := &User{
		ID:       1,
		Username: "john_resident",
		Friends:  []int{3, 4, 5},
		Invites:  []int{1, 2},
	}

	clone := orig.Clone()
	clone.Friends[0] = 999
	clone.Invites = append(clone.Invites, 7)

	if orig.Friends[0] != 3 {
		t.Errorf("clone's Friends must not alias the original, got %d", orig.Friends[0])
	}
	if len(orig.Invites) != 2 {
		t.Errorf("clone's Invites must not alias the original, got %v", orig.Invites)
	}
}

func TestUser_Clone_KeepsNilSlices(t *testing.T) {
	clone := (&User{ID: 8, Username: "admin_super"}).Clone()
	if clone.Friends != nil || clone.Invites != nil {
		t.Errorf("nil slices must stay nil, got %v / %v", clone.Friends, clone.Invites)
	}
}

func TestUser_IsFriend(t *testing.T) {
	u := &User{Friends: []int{3, 4}}
	if !u.IsFriend(3) {
		t.Error("expected 3 to be a friend")
	}
	if u.IsFriend(9) {
		t.Error("expected 9 not to be a friend")
	}
}
