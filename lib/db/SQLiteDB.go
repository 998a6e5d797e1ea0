package db

import (
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/slugline/slugline-go/lib/db/migrations"
	dbModel "github.com/slugline/slugline-go/lib/models/db"
	_ "modernc.org/sqlite"
)

type SQLiteDB struct {
	path  string
	sqlDB *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := migrations.NewMigrationManager(sqlDB, migrations.DialectSQLite).Run(); err != nil {
		return nil, err
	}
	return &SQLiteDB{path: path, sqlDB: sqlDB}, nil
}

// ============== SCRIPT METHODS ==============

func (d SQLiteDB) DoesScriptExist(scriptID string) (*bool, error) {
	resultedSQL, args, err := sq.
		Select("COUNT(1)").
		From("script").
		Where(sq.Eq{"id": scriptID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var count int
	if err := d.sqlDB.QueryRow(resultedSQL, args...).Scan(&count); err != nil {
		return nil, err
	}
	exists := count > 0
	return &exists, nil
}

func (d SQLiteDB) CreateScript(scriptID string, content string) error {
	resultedSQL, args, err := sq.
		Insert("script").
		Columns("id", "content").
		Values(scriptID, content).
		ToSql()
	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d SQLiteDB) GetScript(scriptID string) (*dbModel.ScriptDB, error) {
	resultedSQL, args, err := sq.
		Select("id", "content", "created_at", "updated_at").
		From("script").
		Where(sq.Eq{"id": scriptID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := d.sqlDB.QueryRow(resultedSQL, args...)

	var scriptDB dbModel.ScriptDB
	var createdAt, updatedAt sql.NullTime

	err = row.Scan(&scriptDB.ID, &scriptDB.Content, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New(ScriptDoesNotExistError)
		}
		return nil, err
	}

	if createdAt.Valid {
		scriptDB.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		scriptDB.UpdatedAt = &updatedAt.Time
	}

	return &scriptDB, nil
}

func (d SQLiteDB) SaveScript(scriptID string, content string) error {
	resultedSQL, args, err := sq.
		Update("script").
		Set("content", content).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": scriptID}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := d.sqlDB.Exec(resultedSQL, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New(ScriptDoesNotExistError)
	}
	return nil
}

func (d SQLiteDB) RemoveScript(scriptID string) error {
	removeSnapshots, args, err := sq.
		Delete("snapshot").
		Where(sq.Eq{"script_id": scriptID}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := d.sqlDB.Exec(removeSnapshots, args...); err != nil {
		return err
	}

	removeScript, args, err := sq.
		Delete("script").
		Where(sq.Eq{"id": scriptID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = d.sqlDB.Exec(removeScript, args...)
	return err
}

func (d SQLiteDB) GetScriptIds() (*[]string, error) {
	resultedSQL, args, err := sq.
		Select("id").
		From("script").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := d.sqlDB.Query(resultedSQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scriptIds := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		scriptIds = append(scriptIds, id)
	}
	return &scriptIds, rows.Err()
}

// ============== SNAPSHOT METHODS ==============

func (d SQLiteDB) CreateSnapshot(snapshot dbModel.SnapshotDB) error {
	resultedSQL, args, err := sq.
		Insert("snapshot").
		Columns("id", "script_id", "sequence_number", "content", "notes",
			"auto_save", "is_current", "created_at").
		Values(snapshot.ID, snapshot.ScriptID, snapshot.SequenceNumber, snapshot.Content,
			snapshot.Notes, snapshot.AutoSave, snapshot.IsCurrent, snapshot.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d SQLiteDB) GetSnapshot(snapshotID string) (*dbModel.SnapshotDB, error) {
	resultedSQL, args, err := sq.
		Select("id", "script_id", "sequence_number", "content", "notes",
			"auto_save", "is_current", "created_at").
		From("snapshot").
		Where(sq.Eq{"id": snapshotID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	snapshot, err := scanSnapshot(d.sqlDB.QueryRow(resultedSQL, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New(SnapshotDoesNotExistError)
		}
		return nil, err
	}
	return snapshot, nil
}

func (d SQLiteDB) GetSnapshots(scriptID string) (*[]dbModel.SnapshotDB, error) {
	resultedSQL, args, err := sq.
		Select("id", "script_id", "sequence_number", "content", "notes",
			"auto_save", "is_current", "created_at").
		From("snapshot").
		Where(sq.Eq{"script_id": scriptID}).
		OrderBy("sequence_number ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := d.sqlDB.Query(resultedSQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := make([]dbModel.SnapshotDB, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, *snapshot)
	}
	return &snapshots, rows.Err()
}

func (d SQLiteDB) UpdateSnapshotContent(snapshotID string, content string) error {
	resultedSQL, args, err := sq.
		Update("snapshot").
		Set("content", content).
		Where(sq.Eq{"id": snapshotID}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := d.sqlDB.Exec(resultedSQL, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New(SnapshotDoesNotExistError)
	}
	return nil
}

func (d SQLiteDB) SetCurrentSnapshot(scriptID string, snapshotID string) error {
	clearSQL, args, err := sq.
		Update("snapshot").
		Set("is_current", false).
		Where(sq.Eq{"script_id": scriptID}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := d.sqlDB.Exec(clearSQL, args...); err != nil {
		return err
	}

	markSQL, args, err := sq.
		Update("snapshot").
		Set("is_current", true).
		Where(sq.Eq{"id": snapshotID}).
		ToSql()
	if err != nil {
		return err
	}
	result, err := d.sqlDB.Exec(markSQL, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New(SnapshotDoesNotExistError)
	}
	return nil
}

func (d SQLiteDB) RemoveSnapshot(snapshotID string) error {
	resultedSQL, args, err := sq.
		Delete("snapshot").
		Where(sq.Eq{"id": snapshotID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*dbModel.SnapshotDB, error) {
	var snapshot dbModel.SnapshotDB
	var notes sql.NullString
	var createdAt sql.NullTime

	err := row.Scan(&snapshot.ID, &snapshot.ScriptID, &snapshot.SequenceNumber,
		&snapshot.Content, &notes, &snapshot.AutoSave, &snapshot.IsCurrent, &createdAt)
	if err != nil {
		return nil, err
	}

	if notes.Valid {
		snapshot.Notes = notes.String
	}
	if createdAt.Valid {
		snapshot.CreatedAt = createdAt.Time
	}
	return &snapshot, nil
}
