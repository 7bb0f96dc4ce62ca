package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"hotel_catalog/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertHotel(ctx context.Context, h domain.CanonicalHotel) error {
	features, _ := json.Marshal(h.KeyFeatures)
	seasons, _ := json.Marshal(h.Seasons)
	rooms, _ := json.Marshal(h.Rooms)
	_, err := r.db.ExecContext(ctx, upsertHotelSQL,
		h.Code,
		h.LocalName,
		h.GlobalName,
		h.Type,
		h.Address,
		h.Star,
		h.ServiceScope,
		h.Area,
		string(features),
		string(seasons),
		string(rooms),
	)
	return err
}

func (r *Repo) LogMiss(ctx context.Context, recordID string, status int, reason string) error {
	// keep reason bounded; schema column is VARCHAR(255)
	if len(reason) > 255 {
		reason = reason[:255]
	}
	_, err := r.db.ExecContext(ctx, insertMissSQL, recordID, status, reason)
	return err
}

func (r *Repo) GetHotel(ctx context.Context, code string) (domain.CanonicalHotel, error) {
	row := r.db.QueryRowContext(ctx, getHotelSQL, code)

	var h domain.CanonicalHotel
	var features, seasons, rooms []byte
	if err := row.Scan(
		&h.Code,
		&h.LocalName,
		&h.GlobalName,
		&h.Type,
		&h.Address,
		&h.Star,
		&h.ServiceScope,
		&h.Area,
		&features,
		&seasons,
		&rooms,
	); err != nil {
		if err == sql.ErrNoRows {
			return domain.CanonicalHotel{}, domain.ErrNotFound
		}
		return domain.CanonicalHotel{}, err
	}

	_ = json.Unmarshal(features, &h.KeyFeatures)
	_ = json.Unmarshal(seasons, &h.Seasons)
	_ = json.Unmarshal(rooms, &h.Rooms)
	return h, nil
}

func (r *Repo) ListHotels(ctx context.Context, q domain.HotelsQuery) (domain.HotelsPage, error) {
	rows, err := r.db.QueryContext(ctx, listHotelsSQL,
		valStr(q.Q), valStr(q.Q),
		valStr(q.Type), valStr(q.Type),
		q.Limit,
	)
	if err != nil {
		return domain.HotelsPage{}, err
	}
	defer rows.Close()

	var out []domain.HotelSummary
	for rows.Next() {
		var s domain.HotelSummary
		var roomCount sql.NullInt64
		if err := rows.Scan(&s.Code, &s.Name, &s.Type, &s.Star, &s.Area, &roomCount); err != nil {
			return domain.HotelsPage{}, err
		}
		if roomCount.Valid {
			s.Rooms = int(roomCount.Int64)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return domain.HotelsPage{}, err
	}
	return domain.HotelsPage{Items: out}, nil
}
