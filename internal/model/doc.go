package model

// Package model defines domain data structures shared across the app: video
// metadata, encoding formats, download options, status snapshots, and cookie
// records. Structures mirror the backend JSON contract and are designed for
// direct binding in the UI.
