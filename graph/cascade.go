package graph

import (
	"context"

	"golang.org/x/sync/errgroup"

	"socialgraph/database"
)

// cascade cleans up after a deleted user: the dependent profile goes,
// every post the user authored goes, and the deleted id is filtered
// out of every other user's subscriber list. The three steps touch
// disjoint data and run concurrently; each is best-effort with no
// rollback across steps.
func (e *Engine) cascade(ctx context.Context, userID string) error {
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		profile, err := e.store.FindOne(database.Profiles, database.Predicate{Key: "userId", Equals: userID})
		if err != nil || profile == nil {
			return err
		}

		_, err = e.store.Delete(database.Profiles, str(profile["id"]))
		return err
	})

	g.Go(func() error {
		posts, err := e.store.FindMany(database.Posts, &database.Predicate{Key: "userId", Equals: userID})
		if err != nil {
			return err
		}

		for _, post := range posts {
			if _, err := e.store.Delete(database.Posts, str(post["id"])); err != nil {
				return err
			}
		}
		return nil
	})

	g.Go(func() error {
		followers, err := e.store.FindMany(database.Users, &database.Predicate{Key: "subscribedToUserIds", InArray: userID})
		if err != nil {
			return err
		}

		for _, follower := range followers {
			kept := withoutID(stringList(follower["subscribedToUserIds"]), userID)
			_, err := e.store.Change(database.Users, str(follower["id"]), database.Document{
				"subscribedToUserIds": kept,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	return g.Wait()
}
