package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	gameFields     = "fields name, genres.name, first_release_date, cover.image_id, summary, storyline, videos.video_id, screenshots.image_id, platforms.name, rating, artworks.*;"
	platformsQuery = "fields name, generation, platform_type; sort name asc; limit 500;"

	searchLimit      = 50
	defaultPageLimit = 50
)

func findByIDQuery(id int64) string {
	return fmt.Sprintf("%s where id = %d;", gameFields, id)
}

func findMultipleQuery(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return fmt.Sprintf("%s where id = (%s); limit %d;", gameFields, strings.Join(parts, ","), len(ids))
}

func searchQuery(text string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(text)
	return fmt.Sprintf("search \"%s\"; %s limit %d;", escaped, gameFields, searchLimit)
}

func countQuery(filter string) string {
	if strings.TrimSpace(filter) == "" {
		return ""
	}
	return fmt.Sprintf("where %s;", filter)
}

func pageQuery(filter, sortBy string, limit, offset int) string {
	var b strings.Builder
	b.WriteString(gameFields)
	if strings.TrimSpace(filter) != "" {
		b.WriteString(" where ")
		b.WriteString(filter)
		b.WriteString(";")
	}
	if strings.TrimSpace(sortBy) != "" {
		b.WriteString(" sort ")
		b.WriteString(sortBy)
		b.WriteString(";")
	}
	fmt.Fprintf(&b, " limit %d; offset %d;", limit, offset)
	return b.String()
}

// normalizeIDs drops duplicates and sorts, so equal sets share one cache key.
func normalizeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func cacheKey(op string, args ...string) string {
	return op + ":" + strings.Join(args, "|")
}
