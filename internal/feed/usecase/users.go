package usecase

import (
	"context"
	"fmt"

	authdomain "feedgram/internal/auth/domain"
)

// UserDirectory is the paginated users list. Records without an e-mail are
// dropped before display; the upstream data can omit the field and the list
// treats that defensively rather than as a server guarantee.
type UserDirectory struct {
	*pager[authdomain.User]
	gateway UserGateway
}

func NewUserDirectory(gateway UserGateway, pageSize int) *UserDirectory {
	d := &UserDirectory{gateway: gateway}
	d.pager = newPager(func(ctx context.Context, page, limit int) ([]authdomain.User, int, error) {
		users, count, err := gateway.GetUsers(ctx, page, limit)
		if err != nil {
			return nil, 0, err
		}
		if users == nil {
			return nil, count, nil
		}
		valid := make([]authdomain.User, 0, len(users))
		for _, u := range users {
			if u.Email != "" {
				valid = append(valid, u)
			}
		}
		return valid, count, nil
	}, pageSize)
	return d
}

// Key returns the render identity for row i: the e-mail when present, a
// positional fallback otherwise. The fallback stays even though the filter
// currently guarantees an e-mail; upstream rendering relied on it.
func (d *UserDirectory) Key(i int) string {
	items := d.Items()
	if i < len(items) && items[i].Email != "" {
		return items[i].Email
	}
	return fmt.Sprintf("user-%d", i)
}

// Lookup fetches a single user by ID.
func (d *UserDirectory) Lookup(ctx context.Context, id string) (*authdomain.User, error) {
	return d.gateway.GetUserByID(ctx, id)
}
