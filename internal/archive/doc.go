// Package archive uploads recorded files to S3 cold storage.
//
// Uploads go through the SDK transfer manager, which splits large files
// into parts and sends them concurrently. Progress is observed per part by
// a middleware on the S3 client, so retried parts are only counted once
// they succeed.
package archive
