package model

import "time"

// Task is a row in the `tasks` table. Tasks are plain records keyed
// by an opaque identifier: there is no owner column and no workflow
// state beyond the completed flag.
//
// Fields:
//  ID          – primary key identifier.
//  Title       – short task title.
//  Description – free-form task body.
//  Completed   – whether the task is done.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Task struct {
    ID          uint64    // tasks.id
    Title       string    // tasks.title
    Description string    // tasks.description
    Completed   bool      // tasks.completed
    CreatedAt   time.Time // tasks.created_at
    UpdatedAt   time.Time // tasks.updated_at
}
