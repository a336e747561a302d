package database

import "socialgraph/model"

// Seed inserts the two built-in member types. Profiles reference them
// by id, so they must exist before any profile can be created.
func (s *Store) Seed() error {
	memberTypes := []model.MemberType{
		{Id: "basic", Discount: 0, MonthPostsLimit: 20},
		{Id: "business", Discount: 5, MonthPostsLimit: 100},
	}

	for _, memberType := range memberTypes {
		doc, err := ToDocument(memberType)
		if err != nil {
			return err
		}
		if _, err := s.Create(MemberTypes, doc); err != nil {
			return err
		}
	}

	return nil
}
