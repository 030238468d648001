// Package paginator provides interchangeable pagination strategies over a
// MongoDB collection.
//
// # Overview
//
// paginator implements three strategies behind one Paginator contract:
//   - PagePaginator: classic 1-based pages with total/lastPage/prev/next
//     metadata, backed by a concurrent find+count pair.
//   - OffsetPaginator: raw skip/limit pagination with the same metadata.
//     The offset must land on a page boundary, otherwise the derived
//     currentPage would be meaningless.
//   - CursorPaginator: keyset pagination anchored at the last row of the
//     previous page. This scales well on large collections (a plain index on
//     the cursor field suffices) and stays stable under inserts that do not
//     reorder already returned rows.
//
// # Key concepts
//
//   - Collection: the abstract "find matching documents, sorted, bounded,
//     projected, expanded" capability the strategies consume.
//     MongoCollection adapts a mongo-driver collection; tests and other
//     stores can substitute their own implementation.
//   - Options: filter, sort, projection, populate and lean passthroughs
//     shared by every strategy. For the cursor strategy only the first sort
//     entry matters: it names the cursor field.
//   - Result: one page of rows plus navigation metadata. The metadata shape
//     depends on the strategy; cursor pagination never reports a total.
//
// # Known limitation
//
// The cursor range clause compares the cursor field alone. Rows sharing the
// cursor value at a page boundary can be skipped or duplicated across pages.
// Choose a unique cursor field (the default is _id) when exact iteration is
// required.
package paginator
