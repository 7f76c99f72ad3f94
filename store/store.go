package store

import (
	"errors"
	"fmt"
	"strconv"

	bolt "go.etcd.io/bbolt"

	"github.com/midbel/tally"
	"github.com/midbel/tally/env"
)

var ErrValue = errors.New("undecodable value")

var bucketVars = []byte("variables")

// Store persists a variable environment between runs. Values are encoded as
// a one byte kind tag followed by the textual payload.
type Store struct {
	db *bolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	return &Store{
		db: db,
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load defines every saved binding into ev.
func (s *Store) Load(ev env.Env[tally.Value]) error {
	return s.db.View(func(tx *bolt.Tx) error {
		bk := tx.Bucket(bucketVars)
		if bk == nil {
			return nil
		}
		return bk.ForEach(func(key, value []byte) error {
			val, err := decodeValue(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			ev.Define(string(key), val)
			return nil
		})
	})
}

// Save writes every binding visible from ev.
func (s *Store) Save(ev env.Env[tally.Value]) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bk, err := tx.CreateBucketIfNotExists(bucketVars)
		if err != nil {
			return err
		}
		var werr error
		ev.Walk(func(key string, val tally.Value) {
			if werr != nil {
				return
			}
			data, err := encodeValue(val)
			if err != nil {
				werr = fmt.Errorf("%s: %w", key, err)
				return
			}
			werr = bk.Put([]byte(key), data)
		})
		return werr
	})
}

const (
	kindNumber  = 'n'
	kindString  = 's'
	kindBoolean = 'b'
)

func encodeValue(val tally.Value) ([]byte, error) {
	switch v := val.Raw().(type) {
	case float64:
		return append([]byte{kindNumber}, strconv.FormatFloat(v, 'g', -1, 64)...), nil
	case string:
		return append([]byte{kindString}, v...), nil
	case bool:
		return append([]byte{kindBoolean}, strconv.FormatBool(v)...), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrValue, v)
	}
}

func decodeValue(data []byte) (tally.Value, error) {
	if len(data) == 0 {
		return nil, ErrValue
	}
	payload := string(data[1:])
	switch data[0] {
	case kindNumber:
		f, err := strconv.ParseFloat(payload, 64)
		if err != nil {
			return nil, err
		}
		return tally.CreateReal(f), nil
	case kindString:
		return tally.CreateString(payload), nil
	case kindBoolean:
		b, err := strconv.ParseBool(payload)
		if err != nil {
			return nil, err
		}
		return tally.CreateBool(b), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrValue, data[0])
	}
}
