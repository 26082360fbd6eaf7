package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Paging resolver (query → offset/limit)
=================================*/

type Paging struct {
	Offset int
	Limit  int
}

// ResolvePaging reads ?offset= & ?limit= and normalizes.
// - defaultLimit: fallback when absent/invalid
// - maxLimit: hard cap (0 = uncapped)
func ResolvePaging(c *fiber.Ctx, defaultLimit, maxLimit int) Paging {
	offset, _ := strconv.Atoi(strings.TrimSpace(c.Query("offset", "0")))
	if offset < 0 {
		offset = 0
	}

	limit, err := strconv.Atoi(strings.TrimSpace(c.Query("limit")))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	return Paging{Offset: offset, Limit: limit}
}
