// Package service provides the content operations behind the frontend:
// guestbook-style entries with pagination and the markdown-authored site
// copy. State lives behind the Store interface; the provided MemoryStore
// keeps everything in process, there is no database.
package service
