package archive

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go/middleware"
)

const progressMiddlewareID = "RecarchiverProgress"

// progressMiddleware reports the body length of every UploadPart and
// PutObject call once it has succeeded. Retries run further down the
// stack, so a part is reported exactly once.
func progressMiddleware(report func(int64)) middleware.InitializeMiddleware {
	return middleware.InitializeMiddlewareFunc(progressMiddlewareID, func(
		ctx context.Context, in middleware.InitializeInput, next middleware.InitializeHandler,
	) (middleware.InitializeOutput, middleware.Metadata, error) {
		n := bodyLen(in.Parameters)

		out, md, err := next.HandleInitialize(ctx, in)
		if err == nil && n > 0 {
			report(n)
		}
		return out, md, err
	})
}

// withProgress returns an S3 client option installing progressMiddleware.
func withProgress(report func(int64)) func(*s3.Options) {
	return func(o *s3.Options) {
		o.APIOptions = append(o.APIOptions, func(st *middleware.Stack) error {
			return st.Initialize.Add(progressMiddleware(report), middleware.After)
		})
	}
}

// bodyLen returns the unread length of an upload body, or 0 when it
// cannot be determined.
func bodyLen(params any) int64 {
	var (
		body   io.Reader
		length *int64
	)
	switch p := params.(type) {
	case *s3.UploadPartInput:
		body, length = p.Body, p.ContentLength
	case *s3.PutObjectInput:
		body, length = p.Body, p.ContentLength
	default:
		return 0
	}

	if length != nil {
		return *length
	}
	s, ok := body.(io.Seeker)
	if !ok {
		return 0
	}
	cur, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0
	}
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0
	}
	if _, err := s.Seek(cur, io.SeekStart); err != nil {
		return 0
	}
	return end - cur
}
