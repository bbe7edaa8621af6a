package postgres

import "github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"

// roleQueries holds the fixed statements for one role's tables. Table and
// column names only ever come from this map, keyed by a validated Role.
type roleQueries struct {
	findByEmail   string
	insert        string
	insertProfile string
	findProfile   string
}

var queries = map[domain.Role]roleQueries{
	domain.RoleClient: {
		findByEmail: `SELECT client_id::text, email, password, role, created_at
			FROM client WHERE email = $1`,
		insert: `INSERT INTO client (email, password, role, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING client_id::text, email, password, role, created_at`,
		insertProfile: `INSERT INTO client_info (client_id, name, age, gender, photo_path, company, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		findProfile: `SELECT client_id::text, name, age, gender, photo_path, company, created_at
			FROM client_info WHERE client_id = $1`,
	},
	domain.RoleFreelancer: {
		findByEmail: `SELECT freelancer_id::text, email, password, role, created_at
			FROM freelancer WHERE email = $1`,
		insert: `INSERT INTO freelancer (email, password, role, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING freelancer_id::text, email, password, role, created_at`,
		insertProfile: `INSERT INTO freelancer_info (freelancer_id, name, age, gender, photo_path, headline, skills, hourly_rate, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		findProfile: `SELECT freelancer_id::text, name, age, gender, photo_path, headline, skills, hourly_rate::float8, created_at
			FROM freelancer_info WHERE freelancer_id = $1`,
	},
}

func queriesFor(role domain.Role) (roleQueries, error) {
	q, ok := queries[role]
	if !ok {
		return roleQueries{}, domain.ErrInvalidRole
	}
	return q, nil
}
