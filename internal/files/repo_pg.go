package files

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new file record. The id and upload timestamp are assigned
// by the database inside the same statement, so the write is all-or-nothing.
func (r *PGRepo) Create(ctx context.Context, f File) (File, error) {
	const query = `
INSERT INTO files (filename, original_name, file_size, mime_type, file_data)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, upload_date`

	var mimeType sql.NullString
	if f.MimeType != "" {
		mimeType = sql.NullString{String: f.MimeType, Valid: true}
	}

	err := r.DB.QueryRowContext(
		ctx,
		query,
		f.StorageName,
		f.OriginalName,
		f.SizeBytes,
		mimeType,
		f.Data,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return File{}, err
	}
	return f, nil
}

// List returns metadata for all files, newest first. Payload bytes stay in
// the database.
func (r *PGRepo) List(ctx context.Context) ([]File, error) {
	const query = `
SELECT id, original_name, file_size, mime_type, upload_date
FROM files
ORDER BY upload_date DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []File{}
	for rows.Next() {
		var f File
		var mimeType sql.NullString
		if err := rows.Scan(&f.ID, &f.OriginalName, &f.SizeBytes, &mimeType, &f.CreatedAt); err != nil {
			return nil, err
		}
		if mimeType.Valid {
			f.MimeType = mimeType.String
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// GetByID fetches one file record including its payload.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (File, error) {
	const query = `
SELECT id, filename, original_name, file_size, mime_type, file_data, upload_date
FROM files
WHERE id = $1`

	var f File
	var mimeType sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&f.ID,
		&f.StorageName,
		&f.OriginalName,
		&f.SizeBytes,
		&mimeType,
		&f.Data,
		&f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return File{}, ErrNotFound
		}
		return File{}, err
	}
	if mimeType.Valid {
		f.MimeType = mimeType.String
	}
	return f, nil
}

// Delete removes a file record and reports whether a row was deleted.
func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM files WHERE id = $1`

	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

var _ Repo = (*PGRepo)(nil)
