package hashid

import (
	"errors"

	"github.com/skybox-app/skybox/pkg/conf"

	"github.com/speps/go-hashids"
)

// ID types, mixed into the hash so an ID of one kind cannot be replayed
// as another
const (
	NodeID = iota // file or folder
	UserID        // user
)

var (
	// ErrTypeNotMatch ID type mismatch
	ErrTypeNotMatch = errors.New("invalid ID")
)

// HashEncode hashes the given integers
func HashEncode(v []int) (string, error) {
	hd := hashids.NewData()
	hd.Salt = conf.SystemConfig.HashIDSalt

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return "", err
	}

	id, err := h.Encode(v)
	if err != nil {
		return "", err
	}
	return id, nil
}

// HashDecode decodes the given hash back to integers
func HashDecode(raw string) ([]int, error) {
	hd := hashids.NewData()
	hd.Salt = conf.SystemConfig.HashIDSalt

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return []int{}, err
	}

	return h.DecodeWithError(raw)
}

// HashID hashes a database primary key into its public ID
func HashID(id uint, t int) string {
	v, _ := HashEncode([]int{int(id), t})
	return v
}

// DecodeHashID decodes a public ID back to the database primary key
func DecodeHashID(id string, t int) (uint, error) {
	v, _ := HashDecode(id)
	if len(v) != 2 || v[1] != t {
		return 0, ErrTypeNotMatch
	}
	return uint(v[0]), nil
}
