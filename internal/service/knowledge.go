package service

import "strings"

// Section markers emitted by the context builder. Topic templates test for
// them to decide whether to append platform-specific hints.
const (
	sectionCourses  = "AVAILABLE FINANCIAL EDUCATION"
	sectionExperts  = "VERIFIED FINANCIAL EXPERTS"
	sectionVideos   = "RECENT EDUCATIONAL CONTENT"
	sectionActivity = "YOUR RECENT ACTIVITIES"
	sectionMarket   = "CURRENT MARKET CONTEXT"
)

// Topic is one entry of the canned knowledge base: an ordered keyword set and
// a response template rendered against the assembled context block. The slice
// order is significant, earlier topics win ties in the matcher.
type Topic struct {
	ID       string
	Keywords []string
	Render   func(contextBlock string) string
}

// static wraps a fixed response that ignores the context block.
func static(response string) func(string) string {
	return func(string) string { return response }
}

var financeTopics = []Topic{
	{
		ID:       "budgeting",
		Keywords: []string{"budget", "budgeting", "expense", "spending", "money management", "track expenses"},
		Render: func(contextBlock string) string {
			response := `📊 **Budgeting Fundamentals**

Creating a budget is the foundation of financial health. Here's the 50/30/20 rule:
• **50%** for needs (rent, groceries, utilities)
• **30%** for wants (entertainment, dining out)
• **20%** for savings and debt payments

**Quick Tips:**
• Track expenses for a month to understand spending patterns
• Use apps or spreadsheets to monitor daily expenses
• Review and adjust monthly
• Pay yourself first - save before spending`
			if strings.Contains(contextBlock, sectionCourses) {
				response += "\n\n💡 Check our budgeting courses for detailed guidance!"
			}
			return response
		},
	},
	{
		ID:       "investing",
		Keywords: []string{"invest", "investment", "stocks", "mutual funds", "sip", "portfolio", "market", "equity"},
		Render: func(contextBlock string) string {
			response := `📈 **Smart Investing for Indians**

**Start with these basics:**
• **SIP in Mutual Funds** - Start with ₹1,000/month
• **Diversify**: Equity (60%) + Debt (30%) + Gold (10%)
• **Emergency Fund First** - 6-12 months expenses
• **Long-term mindset** - Stay invested for 5+ years

**Popular Options:**
• Index funds (low cost, market returns)
• Large-cap equity funds (stable growth)
• PPF for tax savings (15-year lock-in)
• ELSS for tax deduction under 80C`
			if strings.Contains(contextBlock, sectionExperts) {
				response += "\n\n👨‍💼 Book a session with our certified experts for personalized advice!"
			}
			return response
		},
	},
	{
		ID:       "stockmarket",
		Keywords: []string{"stock market", "nifty", "sensex", "shares", "trading", "bse", "nse", "ipo", "dividend"},
		Render: static(`📈 **Indian Stock Market Guide**

**Major Indices:**
• **Nifty 50**: Top 50 companies by market cap
• **Sensex**: 30 largest companies on BSE
• **Bank Nifty**: Banking sector index
• **Nifty Midcap/Smallcap**: Mid and small companies

**Trading vs Investing:**
• **Trading**: Short-term (days/weeks) - High risk
• **Investing**: Long-term (years) - Lower risk
• **SIP**: Systematic monthly investing

**Stock Selection Basics:**
• Check P/E ratio (Price to Earnings)
• Look at debt-to-equity ratio
• Analyze revenue growth
• Read annual reports

**Risk Management:**
• Never put all money in one stock
• Diversify across sectors
• Set stop-loss limits
• Invest only surplus money

**Current Market:** Nifty trading around 21,000-22,000 levels with positive momentum.`),
	},
	{
		ID:       "banking",
		Keywords: []string{"bank", "banking", "account", "loan", "credit", "debit", "rtgs", "neft", "upi"},
		Render: static(`🏦 **Banking Essentials**

**Account Types:**
• **Savings**: 3-4% interest, high liquidity
• **Current**: For business, no interest
• **FD**: 5-7% fixed returns, locked period
• **RD**: Monthly deposits, fixed returns

**Digital Banking:**
• **UPI**: Instant transfers, 24/7 available
• **NEFT**: Up to ₹10L, charges apply
• **RTGS**: Above ₹2L, real-time settlement
• **IMPS**: Immediate transfers, 24/7

**Credit Products:**
• **Personal Loan**: 10-15% interest, unsecured
• **Home Loan**: 8-10% interest, longest tenure
• **Car Loan**: 8-12% interest, asset-backed
• **Credit Card**: 18-48% interest, revolving credit

**Banking Tips:**
• Maintain minimum balance to avoid charges
• Use ATMs of your bank to avoid fees
• Enable SMS/email alerts for transactions
• Keep KYC documents updated

**Interest Rates:** Current repo rate is 6.5%, affecting all loan rates.`),
	},
	{
		ID:       "crypto",
		Keywords: []string{"crypto", "cryptocurrency", "bitcoin", "ethereum", "blockchain", "digital currency"},
		Render: static(`₿ **Cryptocurrency in India**

**Current Legal Status:**
• Cryptocurrencies are legal in India
• 30% tax on crypto gains + 1% TDS
• No set-off of losses allowed
• Treated as digital assets, not currency

**Popular Cryptocurrencies:**
• **Bitcoin (BTC)**: First and largest crypto
• **Ethereum (ETH)**: Smart contract platform
• **Binance Coin (BNB)**: Exchange token
• **Cardano (ADA)**: Proof-of-stake blockchain

**Investment Approach:**
• Start with small amounts (1-5% of portfolio)
• Focus on established coins (BTC, ETH)
• Use reputable Indian exchanges (WazirX, CoinDCX)
• Never invest more than you can afford to lose

**Risks:**
• Extremely volatile (50%+ swings)
• Regulatory uncertainty
• Technical risks (wallet security)
• No consumer protection

**Current Trend:** Crypto markets showing institutional adoption but remain highly volatile.`),
	},
	{
		ID:       "realestate",
		Keywords: []string{"real estate", "property", "house", "flat", "rent", "rera", "home buying"},
		Render: static(`🏠 **Real Estate Investment**

**Home Buying Process:**
• Check RERA registration
• Verify clear title documents
• Get legal verification done
• Arrange home loan pre-approval

**Investment Types:**
• **Residential**: Flats, houses for rental income
• **Commercial**: Offices, shops for business rental
• **REITs**: Real Estate Investment Trusts (stock-like)
• **Land**: Raw land for appreciation

**Financing Options:**
• **Home Loan**: Up to 80% property value, 8-10% interest
• **Down Payment**: Minimum 20% of property value
• **EMI Calculation**: Use 40% of income rule
• **Stamp Duty**: 4-10% depending on state

**Key Considerations:**
• Location and connectivity
• Builder reputation and track record
• Possession timeline
• Hidden costs (maintenance, taxes)

**Current Market:** Property prices stable with good financing options available.`),
	},
	{
		ID:       "mutualfunds",
		Keywords: []string{"mutual fund", "sip", "nav", "aum", "expense ratio", "fund house"},
		Render: static(`💼 **Mutual Funds Mastery**

**Fund Categories:**
• **Equity Funds**: High risk, high returns (12-15% historical)
• **Debt Funds**: Low risk, stable returns (6-8%)
• **Hybrid Funds**: Mix of equity and debt (8-12%)
• **Index Funds**: Track market indices (low cost)

**Popular Fund Houses:**
• SBI Mutual Fund, HDFC AMC, ICICI Prudential
• Axis Mutual Fund, Kotak Mahindra AMC
• DSP Investment Managers, UTI AMC

**SIP Strategy:**
• Start with ₹1,000/month in diversified equity fund
• Increase SIP by 10% annually
• Continue for minimum 5-7 years
• Don't stop during market downturns

**Key Metrics:**
• **NAV**: Net Asset Value (price per unit)
• **Expense Ratio**: Annual fee (0.5-2.5%)
• **AUM**: Assets Under Management (fund size)
• **Returns**: 1Y, 3Y, 5Y performance

**Tax Benefits:**
• ELSS funds offer 80C deduction
• Long-term gains above ₹1L taxed at 10%
• No TDS on mutual fund investments`),
	},
	{
		ID:       "goldsilver",
		Keywords: []string{"gold", "silver", "precious metals", "gold etf", "digital gold"},
		Render: static(`🥇 **Gold & Silver Investment**

**Investment Options:**
• **Physical Gold**: Jewelry, coins, bars
• **Gold ETF**: Exchange-traded funds
• **Digital Gold**: Apps like Paytm Gold, PhonePe
• **Gold Mutual Funds**: Fund of funds investing in Gold ETF

**Current Rates:**
• **Gold**: ₹62,500-65,000 per 10 grams
• **Silver**: ₹74,000-78,000 per kg
• Prices vary with international rates and GST

**Allocation Strategy:**
• Keep 5-10% portfolio in gold
• Buy during festivals for better rates
• Prefer ETF/Digital over physical for investment
• Physical gold for emergency purposes

**Tax Implications:**
• Physical gold: 20% LTCG after indexation (3+ years)
• Gold ETF: 10% LTCG without indexation (1+ year)
• GST: 3% on gold, 3% on silver

**Market Factors:**
• International gold prices
• Dollar strength/weakness
• Inflation rates
• Central bank policies`),
	},
	{
		ID:       "insurance",
		Keywords: []string{"insurance", "term insurance", "health insurance", "life insurance"},
		Render: static(`🛡️ **Comprehensive Insurance Guide**

**Life Insurance:**
• **Term Insurance**: 10-15x annual income coverage
• **Endowment**: Avoid - poor returns
• **ULIP**: Avoid - high charges
• **Start early**: Lower premiums for life

**Health Insurance:**
• **Individual**: ₹5-10L basic coverage
• **Family Floater**: ₹10-15L for family
• **Super Top-up**: Additional ₹20-50L coverage
• **Critical Illness**: Covers 30+ diseases

**Other Insurance:**
• **Motor Insurance**: Mandatory third-party + comprehensive
• **Travel Insurance**: International travel coverage
• **Home Insurance**: Property and contents protection

**Claim Process:**
• Cashless: Direct settlement with hospitals
• Reimbursement: Pay first, claim later
• Keep all medical documents
• Inform insurer within 24-48 hours

**Key Tips:**
• Read policy documents carefully
• Disclose all pre-existing conditions
• Compare online before buying
• Renew on time to avoid lapses`),
	},
}

// Topics returns the knowledge base in match-priority order.
func Topics() []Topic {
	return financeTopics
}

// defaultMenuResponse is returned when no topic matches the message.
func defaultMenuResponse(contextBlock string) string {
	var builder strings.Builder
	builder.WriteString(`🎯 **WealthWise Academy Finance Assistant**

I can help you with:
• **💰 Budgeting & Expense Tracking**
• **📈 Investing (SIP, Mutual Funds, Stocks)**
• **💳 Debt Management & Credit Cards**
• **🏛️ Tax Saving (80C, ELSS, PPF)**
• **🏖️ Retirement Planning**
• **🛡️ Insurance (Term, Health)**`)

	if strings.Contains(contextBlock, sectionCourses) {
		builder.WriteString("\n\n📚 **Available Resources:**\nWe have expert courses and certified financial advisors to help you build wealth systematically.")
	}

	builder.WriteString(`

**Current Market:** Indian markets showing positive momentum - good time to start your investment journey!

**Quick Tip:** Start with emergency fund → SIP in index funds → gradually increase investments.

What specific area would you like to explore? Just ask about budgeting, investing, taxes, or any other finance topic!`)

	return builder.String()
}
