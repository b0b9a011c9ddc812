package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"star-dog-walker/internal/ports/auth"
)

var (
	sophie = auth.Identity{ID: "1", Role: auth.RoleOwner}
	sarah  = auth.Identity{ID: "2", Role: auth.RoleWalker}
	emma   = auth.Identity{ID: "3", Role: auth.RoleOwner}
)

func TestDogPolicy(t *testing.T) {
	// Sophie (id=1) es dueña del perro.
	const dogOwner = "1"

	cases := []struct {
		name                            string
		id                              auth.Identity
		read, write, del, create, book bool
	}{
		{"owner of the dog", sophie, true, true, true, true, true},
		{"any walker", sarah, true, false, false, false, true},
		{"another owner", emma, false, false, false, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.read, CanReadDog(tc.id, dogOwner), "read")
			assert.Equal(t, tc.write, CanWriteDog(tc.id, dogOwner), "write")
			assert.Equal(t, tc.del, CanDeleteDog(tc.id, dogOwner), "delete")
			assert.Equal(t, tc.create, CanCreateDog(tc.id), "create")
			assert.Equal(t, tc.book, CanBookWalkFor(tc.id, dogOwner), "book walk")
		})
	}
}

func TestWalkPolicy(t *testing.T) {
	const walkOwner = "1"

	assert.True(t, CanReadWalk(sophie, walkOwner))
	assert.True(t, CanReadWalk(sarah, walkOwner))
	assert.False(t, CanReadWalk(emma, walkOwner))

	// El walker escribe el journal de cualquier walk; un owner solo el suyo.
	assert.True(t, CanWriteWalk(sarah, walkOwner))
	assert.True(t, CanWriteWalk(sophie, walkOwner))
	assert.False(t, CanWriteWalk(emma, walkOwner))

	assert.True(t, CanDeleteWalk(sarah, walkOwner))
	assert.True(t, CanDeleteWalk(sophie, walkOwner))
	assert.False(t, CanDeleteWalk(emma, walkOwner))
}

func TestWalkStatusIsWalkerOnly(t *testing.T) {
	assert.True(t, CanSetWalkStatus(sarah))
	assert.False(t, CanSetWalkStatus(sophie))
	assert.False(t, CanSetWalkStatus(emma))
}

func TestNotificationsNeverCrossUsers(t *testing.T) {
	assert.True(t, OwnsNotification(sophie, "1"))
	assert.False(t, OwnsNotification(sophie, "2"))
	// El rol no da acceso extra sobre inboxes ajenos.
	assert.False(t, OwnsNotification(sarah, "1"))
}
