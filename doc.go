// Package img2docx converts photographed or scanned documents into
// formatted word-processing files.
//
// The pipeline preprocesses the image, sends it to an AI OCR service that
// annotates the recognized text with a small markup (bold, italic,
// headings, alignment), parses that markup into typed blocks, and
// assembles the blocks into a DOCX or PDF document.
//
// Basic usage:
//
//	conv, err := img2docx.New(img2docx.WithAPIKey(key))
//	if err != nil {
//		log.Fatal(err)
//	}
//	result := conv.Convert(ctx, img2docx.Input{
//		ImagePath:  "scan.jpg",
//		OutputPath: "scan.docx",
//	})
//	if !result.Success {
//		log.Fatal(result.Message)
//	}
//
// Each conversion is stateless and independent; a single Converter is
// safe for concurrent use.
package img2docx
