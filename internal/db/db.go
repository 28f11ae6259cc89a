// Файл: internal/db/db.go
package db

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	badger "github.com/dgraph-io/badger/v4"
)

// DB - глобальный дескриптор встроенного хранилища.
// Хранилище монопольно принадлежит одному процессу, как localStorage
// принадлежит одной вкладке браузера: внешних писателей нет.
var DB *badger.DB

// sessionValues - сессионная область (аналог sessionStorage):
// живет только в памяти процесса и не переживает перезапуск.
var (
	sessionValues map[string][]byte
	sessionMutex  sync.RWMutex
)

// InitStorage открывает встроенное хранилище в каталоге dir.
// Пустой dir открывает хранилище в памяти (используется тестами).
func InitStorage(dir string) error {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	// Собственный логгер badger слишком многословен, пишем свои сообщения.
	opts = opts.WithLogger(nil)

	var err error
	DB, err = badger.Open(opts)
	if err != nil {
		return fmt.Errorf("ошибка открытия хранилища: %w", err)
	}

	sessionMutex.Lock()
	sessionValues = make(map[string][]byte)
	sessionMutex.Unlock()

	if dir == "" {
		log.Println("Хранилище открыто в памяти.")
	} else {
		log.Printf("Хранилище открыто: %s", dir)
	}
	return nil
}

// CloseStorage закрывает хранилище. Ошибка закрытия только логируется.
func CloseStorage() {
	if DB == nil {
		return
	}
	if err := DB.Close(); err != nil {
		log.Printf("CloseStorage: ошибка закрытия хранилища: %v", err)
	}
	DB = nil
}

// readRaw возвращает сырое значение по ключу.
// Отсутствие ключа - не ошибка: возвращается (nil, nil).
func readRaw(key string) ([]byte, error) {
	var raw []byte
	err := DB.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	return raw, err
}

// readJSON читает и десериализует значение по ключу в dest.
// Контракт хранилища: отсутствующие или испорченные данные дают нулевое
// значение dest, наружу ошибка не уходит - только в лог.
func readJSON(key string, dest interface{}) {
	raw, err := readRaw(key)
	if err != nil {
		log.Printf("readJSON: ошибка чтения ключа '%s': %v", key, err)
		return
	}
	if len(raw) == 0 {
		return
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("readJSON: испорченные данные по ключу '%s': %v", key, err)
	}
}

// writeJSON сериализует и записывает значение по ключу.
// Ошибки сериализации и записи гасятся: логируются и превращаются в false.
func writeJSON(key string, value interface{}) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("writeJSON: ошибка сериализации для ключа '%s': %v", key, err)
		return false
	}
	err = DB.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), raw)
	})
	if err != nil {
		log.Printf("writeJSON: ошибка записи ключа '%s': %v", key, err)
		return false
	}
	return true
}

// writeString записывает строковое значение как есть (без JSON-обертки).
// Используется для скалярных флагов вроде carrytomeKycRegistered.
func writeString(key, value string) bool {
	err := DB.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		log.Printf("writeString: ошибка записи ключа '%s': %v", key, err)
		return false
	}
	return true
}

// readString читает строковое значение; отсутствие ключа дает "".
func readString(key string) string {
	raw, err := readRaw(key)
	if err != nil {
		log.Printf("readString: ошибка чтения ключа '%s': %v", key, err)
		return ""
	}
	return string(raw)
}

// deleteKey удаляет ключ из персистентного хранилища.
func deleteKey(key string) {
	err := DB.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		log.Printf("deleteKey: ошибка удаления ключа '%s': %v", key, err)
	}
}

// --- Сессионная область / Session-scoped values ---

func sessionWriteJSON(key string, value interface{}) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("sessionWriteJSON: ошибка сериализации для ключа '%s': %v", key, err)
		return false
	}
	sessionMutex.Lock()
	sessionValues[key] = raw
	sessionMutex.Unlock()
	return true
}

func sessionReadJSON(key string, dest interface{}) bool {
	sessionMutex.RLock()
	raw, ok := sessionValues[key]
	sessionMutex.RUnlock()
	if !ok || len(raw) == 0 {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("sessionReadJSON: испорченные данные по ключу '%s': %v", key, err)
		return false
	}
	return true
}

func sessionDelete(key string) {
	sessionMutex.Lock()
	delete(sessionValues, key)
	sessionMutex.Unlock()
}
