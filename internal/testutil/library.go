package testutil

import "strings"

// LibraryHeader is the header line of a library file.
const LibraryHeader = "id,title,author,isbn,publisher,language,year"

// LibraryCSV is a small library file. It contains a header, two rows that
// must be rejected (non-numeric id, too few fields), one row with an unknown
// language and six valid books.
const LibraryCSV = LibraryHeader + `
1,Head First Design Patterns,Eric Freeman,9780596007126,O'Reilly,ENGLISH,2004
2,Refactoring,Martin Fowler,9780201485677,Addison-Wesley,ENGLISH,1999
x,Not A Book,Nobody,0000000000,Nowhere,ENGLISH,2002
3,Clean Code,Robert C. Martin,9780132350884,Prentice Hall,ENGLISH,2008
4,Java Concurrency in Practice,Brian Goetz,9780321349606,Addison-Wesley,ENGLISH,2006
5,Too Short,Somebody
6,Het Boek,Jan Jansen,9789000000001,Querido,FRENCH,2010
7,Patterns of Enterprise Application Architecture,Martin Fowler,9780321127426,Addison-Wesley,ENGLISH,2002
8,Der Prozess,Franz Kafka,9783596294312,Fischer,GERMAN,1925
`

// LibraryRows joins rows of fields into library file lines below LibraryHeader.
func LibraryRows(rows ...[]string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, LibraryHeader)
	for _, row := range rows {
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.Join(lines, "\n") + "\n"
}

// WriteLibrary writes LibraryCSV to path inside the environment and returns
// its absolute path.
func (e *TestEnv) WriteLibrary(path string) string {
	e.t.Helper()
	e.WriteFileString(path, LibraryCSV)
	return e.Path(path)
}
