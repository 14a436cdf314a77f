// Package wordlist loads dictionaries of candidate secrets.
//
// A dictionary is plain text with one candidate per line. Lines are taken
// verbatim apart from the "\n" or "\r\n" terminator, so leading or trailing spaces and
// empty lines all become candidates. Lines up to MaxLineSize bytes are
// accepted.
//
// Dictionaries come from a Source: a local file (FileSource), an open stream
// such as stdin (ReaderSource) or an object in S3 or an S3-compatible
// store (S3Source). The whole list is read before cracking starts so I/O
// failures surface early.
//
//	client, err := wordlist.NewS3Client(ctx, wordlist.S3Config{Region: "eu-west-1"})
//	if err != nil {
//	    return err
//	}
//	src, err := wordlist.NewS3Source(client, "s3://wordlists/rockyou.txt")
//	if err != nil {
//	    return err
//	}
//	lines, err := wordlist.Load(ctx, src)
//
// S3 failures are classified into ErrObjectNotFound, ErrBucketNotFound,
// ErrAccessDenied and friends so callers can use errors.Is.
package wordlist
