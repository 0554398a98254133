package mock

import (
	"sort"

	"corkboard/app/models"
)

func sortThreads(threads []*models.Thread) {
	sort.Slice(threads, func(i, j int) bool {
		return models.ThreadAfter(threads[i], threads[j])
	})
}

func sortPosts(posts []*models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		return models.PostBefore(posts[i], posts[j])
	})
}
