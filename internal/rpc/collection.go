package rpc

import "github.com/daniilsolovey/blog-cms/internal/db"

// newList converts every element; the result is never nil so it encodes as [].
func newList[T, R any](list []T, convert func(T) R) []R {
	result := make([]R, len(list))
	for i := range list {
		result[i] = convert(list[i])
	}

	return result
}

func NewUsers(list []db.User) []User { return newList(list, NewUser) }
func NewCategories(list []db.Category) []Category { return newList(list, NewCategory) }
func NewTags(list []db.Tag) []Tag { return newList(list, NewTag) }
func NewPopularPosts(list []db.PopularPost) []PopularPost { return newList(list, NewPopularPost) }
