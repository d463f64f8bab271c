package graph

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// personProjection returns the columns personFromRecord reads. Every query
// that yields people binds the node to p.
const personProjection = `p.id AS id, p.name AS name, p.age AS age,
		       p.location AS location, p.created_at AS created_at`

func personFromRecord(record *neo4j.Record) Person {
	return Person{
		ID:        getStringFromRecord(record, "id"),
		Name:      getStringFromRecord(record, "name"),
		Age:       getIntFromRecord(record, "age"),
		Location:  getStringFromRecord(record, "location"),
		CreatedAt: getTimeFromRecord(record, "created_at"),
	}
}

func peopleFromRecords(records []*neo4j.Record) []Person {
	people := make([]Person, 0, len(records))
	for _, record := range records {
		people = append(people, personFromRecord(record))
	}
	return people
}

func getStringFromRecord(record *neo4j.Record, key string) string {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return ""
	}
	if str, ok := val.(string); ok {
		return str
	}
	return ""
}

func getIntFromRecord(record *neo4j.Record, key string) int {
	return int(getInt64FromRecord(record, key))
}

func getInt64FromRecord(record *neo4j.Record, key string) int64 {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return 0
	}
	if i, ok := val.(int64); ok {
		return i
	}
	if i, ok := val.(int); ok {
		return int64(i)
	}
	return 0
}

func getTimeFromRecord(record *neo4j.Record, key string) time.Time {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return time.Time{}
	}
	// Neo4j datetime values come as time.Time
	if t, ok := val.(time.Time); ok {
		return t.UTC()
	}
	return time.Time{}
}
