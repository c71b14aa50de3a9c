package rest

import "github.com/daniilsolovey/blog-cms/internal/db"

func NewTags(list []db.Tag) []Tag { return Map(list, NewTag) }
