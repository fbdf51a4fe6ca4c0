// Package testdb holds helpers for Postgres integration tests.
//
// Each test runs inside a transaction that is rolled back when the test
// function returns, so tests share one database without seeing each
// other's rows:
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        cards := postgres.NewPostgresCardStore(db, nil).WithTx(tx)
//	        ...
//	    })
//	}
//
// Tests are skipped unless WORDCARDS_TEST_DATABASE_URL is set.
package testdb
