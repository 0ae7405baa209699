package aws

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"docview/internal/log"
	"docview/internal/model"
)

// scanSegments is the number of parallel scan segments used to load a table.
const scanSegments = 4

// maxBatchWrite is the DynamoDB BatchWriteItem item limit.
const maxBatchWrite = 25

// Attribute names of the block table.
const (
	attrID       = "id"
	attrPosition = "position"
	attrType     = "type"
	attrTitle    = "title"
	attrIcon     = "icon"
	attrParentID = "parent_id"
	attrContent  = "content"
	attrText     = "text"
	attrSearch   = "search" // lower-cased title and text
)

// ScanBlocks loads every block in table, ordered by position.
func (c *Client) ScanBlocks(ctx context.Context, table string) ([]*model.Block, error) {
	log.Debug("Scanning DynamoDB table %s in %d segments...", table, scanSegments)

	type segmentResult struct {
		items []positionedBlock
		err   error
	}

	results := make(chan segmentResult, scanSegments)

	var wg sync.WaitGroup
	for seg := 0; seg < scanSegments; seg++ {
		wg.Add(1)
		go func(segment int32) {
			defer wg.Done()
			items, err := c.scanSegment(ctx, &dynamodb.ScanInput{
				TableName:     aws.String(table),
				Segment:       aws.Int32(segment),
				TotalSegments: aws.Int32(scanSegments),
			})
			results <- segmentResult{items: items, err: err}
		}(int32(seg))
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var all []positionedBlock
	var firstErr error
	for result := range results {
		if result.err != nil {
			if firstErr == nil {
				firstErr = result.err
			}
			continue
		}
		all = append(all, result.items...)
	}
	if firstErr != nil {
		return nil, fmt.Errorf("failed to scan table %s: %w", table, firstErr)
	}

	blocks := sortByPosition(all)
	log.Info("Loaded %d blocks from DynamoDB table %s", len(blocks), table)
	return blocks, nil
}

// SearchBlocks returns blocks whose title or text contains query,
// case-insensitively, stopping after limit matches (0 means no limit).
func (c *Client) SearchBlocks(ctx context.Context, table, query string, limit int) ([]*model.Block, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}
	log.Debug("Searching DynamoDB table %s for %q", table, q)

	input := &dynamodb.ScanInput{
		TableName:        aws.String(table),
		FilterExpression: aws.String("contains(#search, :q) OR contains(#title, :raw)"),
		ExpressionAttributeNames: map[string]string{
			"#search": attrSearch,
			"#title":  attrTitle,
		},
		ExpressionAttributeValues: map[string]dbtypes.AttributeValue{
			":q":   &dbtypes.AttributeValueMemberS{Value: q},
			":raw": &dbtypes.AttributeValueMemberS{Value: strings.TrimSpace(query)},
		},
	}

	var found []positionedBlock
	paginator := dynamodb.NewScanPaginator(c.dynamodb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to search table %s: %w", table, err)
		}
		for _, item := range page.Items {
			if pb, ok := convertItem(item); ok {
				found = append(found, pb)
			}
		}
		if limit > 0 && len(found) >= limit {
			break
		}
	}

	blocks := sortByPosition(found)
	if limit > 0 && len(blocks) > limit {
		blocks = blocks[:limit]
	}
	return blocks, nil
}

// PutBlocks writes blocks to table in batches, keeping their order as position.
func (c *Client) PutBlocks(ctx context.Context, table string, blocks []*model.Block) error {
	for start := 0; start < len(blocks); start += maxBatchWrite {
		end := min(start+maxBatchWrite, len(blocks))

		requests := make([]dbtypes.WriteRequest, 0, end-start)
		for i := start; i < end; i++ {
			requests = append(requests, dbtypes.WriteRequest{
				PutRequest: &dbtypes.PutRequest{Item: convertBlock(blocks[i], i)},
			})
		}

		if err := c.batchWrite(ctx, table, requests); err != nil {
			return err
		}
	}

	log.Info("Wrote %d blocks to DynamoDB table %s", len(blocks), table)
	return nil
}

// batchWrite retries unprocessed items with a short backoff.
func (c *Client) batchWrite(ctx context.Context, table string, requests []dbtypes.WriteRequest) error {
	const maxAttempts = 5
	backoff := 100 * time.Millisecond

	for attempt := 1; len(requests) > 0; attempt++ {
		out, err := c.dynamodb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]dbtypes.WriteRequest{table: requests},
		})
		if err != nil {
			return fmt.Errorf("failed to write blocks to %s: %w", table, err)
		}

		requests = out.UnprocessedItems[table]
		if len(requests) == 0 {
			return nil
		}
		if attempt >= maxAttempts {
			return fmt.Errorf("failed to write %d blocks to %s after %d attempts", len(requests), table, attempt)
		}

		log.Warn("%d unprocessed blocks, retrying in %s", len(requests), backoff)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return nil
}

func (c *Client) scanSegment(ctx context.Context, input *dynamodb.ScanInput) ([]positionedBlock, error) {
	var items []positionedBlock
	paginator := dynamodb.NewScanPaginator(c.dynamodb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			if pb, ok := convertItem(item); ok {
				items = append(items, pb)
			} else {
				log.Warn("Skipping DynamoDB item without %s attribute", attrID)
			}
		}
	}
	return items, nil
}

type positionedBlock struct {
	position int
	block    *model.Block
}

func sortByPosition(items []positionedBlock) []*model.Block {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].position != items[j].position {
			return items[i].position < items[j].position
		}
		return items[i].block.ID < items[j].block.ID
	})

	blocks := make([]*model.Block, len(items))
	for i, item := range items {
		blocks[i] = item.block
	}
	return blocks
}

// convertItem converts a DynamoDB item to a block. Items without an id are rejected.
func convertItem(item map[string]dbtypes.AttributeValue) (positionedBlock, bool) {
	id := stringAttr(item, attrID)
	if id == "" {
		return positionedBlock{}, false
	}

	block := &model.Block{
		ID:       id,
		Type:     model.BlockType(stringAttr(item, attrType)),
		Title:    stringAttr(item, attrTitle),
		Icon:     stringAttr(item, attrIcon),
		ParentID: stringAttr(item, attrParentID),
		Text:     stringAttr(item, attrText),
	}
	if block.Type == "" {
		block.Type = model.BlockTypePage
	}

	switch v := item[attrContent].(type) {
	case *dbtypes.AttributeValueMemberL:
		for _, av := range v.Value {
			if s, ok := av.(*dbtypes.AttributeValueMemberS); ok {
				block.Content = append(block.Content, s.Value)
			}
		}
	case *dbtypes.AttributeValueMemberSS:
		block.Content = append(block.Content, v.Value...)
	}

	position := 0
	if n, ok := item[attrPosition].(*dbtypes.AttributeValueMemberN); ok {
		if p, err := strconv.Atoi(n.Value); err == nil {
			position = p
		}
	}

	return positionedBlock{position: position, block: block}, true
}

// convertBlock converts a block to a DynamoDB item.
func convertBlock(b *model.Block, position int) map[string]dbtypes.AttributeValue {
	item := map[string]dbtypes.AttributeValue{
		attrID:       &dbtypes.AttributeValueMemberS{Value: b.ID},
		attrPosition: &dbtypes.AttributeValueMemberN{Value: strconv.Itoa(position)},
		attrType:     &dbtypes.AttributeValueMemberS{Value: string(b.Type)},
	}

	putString := func(name, value string) {
		if value != "" {
			item[name] = &dbtypes.AttributeValueMemberS{Value: value}
		}
	}
	putString(attrTitle, b.Title)
	putString(attrIcon, b.Icon)
	putString(attrParentID, b.ParentID)
	putString(attrText, b.Text)
	putString(attrSearch, strings.ToLower(strings.TrimSpace(b.Title+" "+b.Text)))

	if len(b.Content) > 0 {
		list := make([]dbtypes.AttributeValue, len(b.Content))
		for i, id := range b.Content {
			list[i] = &dbtypes.AttributeValueMemberS{Value: id}
		}
		item[attrContent] = &dbtypes.AttributeValueMemberL{Value: list}
	}

	return item
}

func stringAttr(item map[string]dbtypes.AttributeValue, name string) string {
	if s, ok := item[name].(*dbtypes.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}
