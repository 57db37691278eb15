// Package index builds the single-page index document of a book.
//
// A run lists the docs directory, keeps eligible markdown chapters, orders
// them (chapters before appendices, otherwise locale collation), demotes
// headings and rewrites image paths in each file concurrently, prepends the
// README and writes the result to the index path.
//
// Every failure is terminal: the index file is only written after all
// inputs were read and transformed successfully.
package index
