package util

import (
	"math/rand"
	"strings"
	"time"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

var randomVariant = []rune("1234567890abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

// RandStringRunes returns a random string in given length
func RandStringRunes(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = randomVariant[rand.Intn(len(randomVariant))]
	}
	return string(b)
}

// Replace replaces every table key in s with its value
func Replace(table map[string]string, s string) string {
	for key, value := range table {
		s = strings.Replace(s, key, value, -1)
	}
	return s
}
