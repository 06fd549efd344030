package inmemdb

import (
	"sync"

	"github.com/abdelrhmanQ/shc2/core/assignment"
	"github.com/abdelrhmanQ/shc2/core/attendance"
	"github.com/abdelrhmanQ/shc2/core/news"
	"github.com/abdelrhmanQ/shc2/core/user"
)

// defaultCapacity bounds each collection; a full table surfaces
// core.ErrStorageFull, the local-storage quota analogue.
const defaultCapacity = 10_000

type (
	userTable struct {
		mutex sync.RWMutex
		table map[string]*user.User
		order []string // insertion order
		cap   int
	}

	assignmentTable struct {
		mutex sync.RWMutex
		table map[string]*assignment.Assignment
		order []string
		cap   int
	}

	newsTable struct {
		mutex sync.RWMutex
		table map[string]*news.News
		order []string
		cap   int
	}

	attendanceTables struct {
		mutex    sync.RWMutex
		sessions []attendance.Session
		records  []attendance.Record
		cap      int
	}

	// DB is the local storage backend: synchronous, durable for the process
	// lifetime, always succeeds unless a collection hits capacity.
	DB struct {
		user       *userTable
		assignment *assignmentTable
		news       *newsTable
		attendance *attendanceTables
	}
)

func Open() (*DB, error) {
	return OpenWithCapacity(defaultCapacity)
}

func OpenWithCapacity(capacity int) (*DB, error) {
	return &DB{
		user:       &userTable{table: make(map[string]*user.User), cap: capacity},
		assignment: &assignmentTable{table: make(map[string]*assignment.Assignment), cap: capacity},
		news:       &newsTable{table: make(map[string]*news.News), cap: capacity},
		attendance: &attendanceTables{cap: capacity},
	}, nil
}
