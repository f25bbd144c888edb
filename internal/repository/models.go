package repository

import "time"

// Transaction mirrors one observed on-chain transaction. transaction_hash is
// the record's identity: re-ingesting a known hash refreshes the mutable
// columns instead of inserting a duplicate.
type Transaction struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	BlockNumber          uint64    `gorm:"not null;index" json:"block_number"`
	BlockTimestamp       int64     `gorm:"not null;index" json:"block_timestamp"` // Unix seconds, authoritative ordering key
	TransactionHash      string    `gorm:"size:66;uniqueIndex;not null" json:"transaction_hash"`
	FromAddress          string    `gorm:"size:42" json:"from_address"`
	ToAddress            string    `gorm:"size:42" json:"to_address"`
	Gas                  string    `gorm:"size:100;not null;default:0" json:"gas"` // decimal string, may exceed safe-integer range
	Status               string    `gorm:"size:16;not null" json:"status"`
	OperationDescription string    `gorm:"size:255" json:"operation_description"`
	CreatedAt            time.Time `json:"created_at"`
}

func (Transaction) TableName() string { return "transaction_records" }

type NFT struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TokenID   int64     `gorm:"not null;index" json:"tokenId"`
	Kind      string    `gorm:"size:100" json:"kind"`
	Owner     string    `gorm:"size:42;index" json:"owner"`
	Creater   string    `gorm:"size:42" json:"creater"`
	Img       string    `gorm:"size:255" json:"img"` // IPFS content identifier
	Royalty   int64     `json:"royalty"`
	Status    string    `gorm:"size:32" json:"status"`
	Lease     string    `gorm:"size:100" json:"lease"`
	Price     string    `gorm:"size:100" json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

func (NFT) TableName() string { return "nfts" }

type Auction struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TokenID       int64     `gorm:"not null;index" json:"tokenId"`
	URI           string    `gorm:"size:255" json:"uri"`
	Seller        string    `gorm:"size:42;index" json:"seller"`
	StartPrice    string    `gorm:"size:100" json:"startPrice"`
	HighestBid    string    `gorm:"size:100" json:"highestBid"`
	HighestBidder string    `gorm:"size:42" json:"highestBidder"`
	EndTime       int64     `json:"endTime"`
	IsActive      bool      `json:"isActive"`
	IsRoyalty     bool      `json:"isRoyalty"`
	Num           int64     `json:"num"`
	BidCount      int64     `json:"bidCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (Auction) TableName() string { return "auctions" }

type Bid struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AuctionID uint      `gorm:"not null;index" json:"auctionId"`
	Bidder    string    `gorm:"size:42" json:"bidder"`
	BidAmount string    `gorm:"size:100" json:"bidAmount"`
	BidTime   time.Time `gorm:"not null;index" json:"bidTime"`
}

func (Bid) TableName() string { return "bids" }

type User struct {
	ID            string    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name          string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	PasswordHash  string    `gorm:"not null" json:"-"`
	Wallet        string    `gorm:"size:42;index" json:"wallet"`
	Bio           string    `gorm:"type:text" json:"bio"`
	IsAccrediting bool      `json:"isAccrediting"`
	Integral      int64     `json:"integral"`
	AssessURI     string    `gorm:"size:255" json:"assessUri"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (User) TableName() string { return "users" }

type Accreditation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255" json:"name"`
	TokenID    int64     `gorm:"not null;index" json:"tokenId"`
	Messages   string    `gorm:"type:text" json:"messages"`
	Owner      string    `gorm:"size:42" json:"owner"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Accreditation) TableName() string { return "accrediting" }

// RangeQuery bounds analytics and export queries to whole calendar days.
// StartDate and EndDate are inclusive "YYYY-MM-DD" strings.
type RangeQuery struct {
	StartDate string
	EndDate   string
	Operation string // empty or "all" means no label filter
}

type ActivityRow struct {
	Day       string `gorm:"column:day"`
	Operation string `gorm:"column:operation"`
	TxCount   int64  `gorm:"column:tx_count"`
}

type GasRow struct {
	Day       string  `gorm:"column:day"`
	Operation string  `gorm:"column:operation"`
	AvgGas    float64 `gorm:"column:avg_gas"`
}

type UserActivityRow struct {
	Day             string `gorm:"column:day"`
	ActiveSenders   int64  `gorm:"column:active_senders"`
	ActiveReceivers int64  `gorm:"column:active_receivers"`
}

type StatsRow struct {
	TotalTransactions int64  `gorm:"column:total_transactions"`
	SuccessfulCount   int64  `gorm:"column:successful_count"`
	TotalGas          string `gorm:"column:total_gas"` // decimal string, summed in SQL
}
