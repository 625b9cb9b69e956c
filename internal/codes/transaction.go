// Package codes classifies BAI2 type codes.
//
// The tables below are the published BAI2 code lists. Lookup functions are
// pure and total: unknown codes classify into the documented custom ranges
// when they fall inside one, and to an explicit unknown class otherwise, so
// a self-describing file is never rejected for carrying a code we cannot
// name.
package codes

import "strconv"

// Direction indicates whether a transaction moves money in or out.
type Direction string

const (
	DirectionCredit  Direction = "credit"
	DirectionDebit   Direction = "debit"
	DirectionUnknown Direction = "unknown"
)

// CategoryCustom is the category for codes in the bank-defined custom ranges.
const CategoryCustom = "custom"

// CategoryUnknown is the category for codes outside every documented range.
const CategoryUnknown = "unknown"

// TransactionClass is the classification of a transaction detail type code.
type TransactionClass struct {
	Direction Direction
	Category  string
}

// LookupTransaction classifies a three-digit transaction detail type code.
// Codes 920-959 are bank-defined credits and 960-999 bank-defined debits;
// they classify as custom-but-directional rather than fully unknown.
func LookupTransaction(code string) TransactionClass {
	if c, ok := transactionTable[code]; ok {
		return c
	}
	if n, err := strconv.Atoi(code); err == nil {
		switch {
		case n >= 920 && n <= 959:
			return TransactionClass{DirectionCredit, CategoryCustom}
		case n >= 960 && n <= 999:
			return TransactionClass{DirectionDebit, CategoryCustom}
		}
	}
	return TransactionClass{DirectionUnknown, CategoryUnknown}
}

var transactionTable = map[string]TransactionClass{
	"108": {DirectionCredit, "credit"},
	"115": {DirectionCredit, "lockbox_deposit"},
	"116": {DirectionCredit, "item_in_lockbox_deposit"},
	"118": {DirectionCredit, "lockbox_adjustment_credit"},
	"121": {DirectionCredit, "edi_transaction_credit"},
	"122": {DirectionCredit, "edibanx_credit_received"},
	"123": {DirectionCredit, "edibanx_credit_return"},
	"135": {DirectionCredit, "dtc_concentration_credit"},
	"136": {DirectionCredit, "item_in_dtc_deposit"},
	"142": {DirectionCredit, "ach_credit_received"},
	"143": {DirectionCredit, "item_in_ach_deposit"},
	"145": {DirectionCredit, "ach_concentration_credit"},
	"147": {DirectionCredit, "individual_bank_card_deposit"},
	"155": {DirectionCredit, "preauthorized_draft_credit"},
	"156": {DirectionCredit, "item_in_pac_deposit"},
	"164": {DirectionCredit, "corporate_trade_payment_credit"},
	"165": {DirectionCredit, "preauthorized_ach_credit"},
	"166": {DirectionCredit, "ach_settlement"},
	"168": {DirectionCredit, "ach_return_item_or_adjustment_settlement"},
	"169": {DirectionCredit, "miscellaneous_ach_credit"},
	"171": {DirectionCredit, "individual_loan_deposit"},
	"172": {DirectionCredit, "deposit_correction"},
	"173": {DirectionCredit, "bank_prepared_deposit"},
	"174": {DirectionCredit, "other_deposit"},
	"175": {DirectionCredit, "check_deposit_package"},
	"176": {DirectionCredit, "re_presented_check_deposit"},
	"184": {DirectionCredit, "draft_deposit"},
	"187": {DirectionCredit, "cash_letter_credit"},
	"189": {DirectionCredit, "cash_letter_adjustment"},
	"191": {DirectionCredit, "individual_incoming_internal_money_transfer"},
	"195": {DirectionCredit, "incoming_money_transfer"},
	"196": {DirectionCredit, "money_transfer_adjustment"},
	"198": {DirectionCredit, "compensation"},
	"201": {DirectionCredit, "individual_automatic_transfer_credit"},
	"202": {DirectionCredit, "bond_operations_credit"},
	"206": {DirectionCredit, "book_transfer_credit"},
	"208": {DirectionCredit, "individual_international_money_transfer_credit"},
	"212": {DirectionCredit, "foreign_letter_of_credit"},
	"213": {DirectionCredit, "letter_of_credit"},
	"214": {DirectionCredit, "foreign_exchange_of_credit"},
	"216": {DirectionCredit, "foreign_remittance_credit"},
	"218": {DirectionCredit, "foreign_collection_credit"},
	"221": {DirectionCredit, "foreign_check_purchase"},
	"222": {DirectionCredit, "foreign_checks_deposited"},
	"224": {DirectionCredit, "commission"},
	"226": {DirectionCredit, "international_money_market_trading"},
	"227": {DirectionCredit, "standing_order"},
	"229": {DirectionCredit, "miscellaneous_international_credit"},
	"232": {DirectionCredit, "sale_of_debt_security"},
	"233": {DirectionCredit, "securities_sold"},
	"234": {DirectionCredit, "sale_of_equity_security"},
	"235": {DirectionCredit, "matured_reverse_repurchase_order"},
	"236": {DirectionCredit, "maturity_of_debt_security"},
	"237": {DirectionCredit, "individual_collection_credit"},
	"238": {DirectionCredit, "collection_of_dividends"},
	"240": {DirectionCredit, "coupon_collections_banks"},
	"241": {DirectionCredit, "bankers_acceptances"},
	"242": {DirectionCredit, "collection_of_interest_income"},
	"243": {DirectionCredit, "matured_fed_funds_purchased"},
	"244": {DirectionCredit, "interest_matured_principal_payment"},
	"246": {DirectionCredit, "commercial_paper"},
	"247": {DirectionCredit, "capital_change"},
	"248": {DirectionCredit, "savings_bonds_sales_adjustment"},
	"249": {DirectionCredit, "miscellaneous_security_credit"},
	"252": {DirectionCredit, "debit_reversal"},
	"254": {DirectionCredit, "posting_error_correction_credit"},
	"255": {DirectionCredit, "check_posted_and_returned"},
	"257": {DirectionCredit, "individual_ach_return_item"},
	"258": {DirectionCredit, "ach_reversal_credit"},
	"261": {DirectionCredit, "individual_rejected_credit"},
	"263": {DirectionCredit, "overdraft"},
	"266": {DirectionCredit, "return_item"},
	"268": {DirectionCredit, "return_item_adjustment"},
	"274": {DirectionCredit, "cumulative_zba_or_disbursement_credits"},
	"275": {DirectionCredit, "zba_credit"},
	"276": {DirectionCredit, "zba_float_adjustment"},
	"277": {DirectionCredit, "zba_credit_transfer"},
	"278": {DirectionCredit, "zba_credit_adjustment"},
	"281": {DirectionCredit, "individual_controlled_disbursing_credit"},
	"286": {DirectionCredit, "individual_dtc_disbursing_credit"},
	"295": {DirectionCredit, "atm_credit"},
	"301": {DirectionCredit, "commercial_deposit"},
	"306": {DirectionCredit, "fed_funds_sold"},
	"308": {DirectionCredit, "trust_credit"},
	"331": {DirectionCredit, "individual_escrow_credit"},
	"342": {DirectionCredit, "broker_deposit"},
	"344": {DirectionCredit, "individual_back_value_credit"},
	"345": {DirectionCredit, "item_in_brokers_deposit"},
	"346": {DirectionCredit, "sweep_interest_income"},
	"347": {DirectionCredit, "sweep_principal_sell"},
	"348": {DirectionCredit, "futures_credit"},
	"349": {DirectionCredit, "principal_payments_credit"},
	"351": {DirectionCredit, "individual_investment_sold"},
	"353": {DirectionCredit, "cash_center_credit"},
	"354": {DirectionCredit, "interest_credit"},
	"357": {DirectionCredit, "credit_adjustment"},
	"358": {DirectionCredit, "ytd_adjustment_credit"},
	"359": {DirectionCredit, "interest_adjustment_credit"},
	"362": {DirectionCredit, "correspondent_collection"},
	"363": {DirectionCredit, "correspondent_collection_adjustment"},
	"364": {DirectionCredit, "loan_participation"},
	"366": {DirectionCredit, "currency_and_coin_deposited"},
	"367": {DirectionCredit, "food_stamp_letter"},
	"368": {DirectionCredit, "food_stamp_adjustment"},
	"369": {DirectionCredit, "clearing_settlement_credit"},
	"372": {DirectionCredit, "back_value_adjustment"},
	"373": {DirectionCredit, "customer_payroll"},
	"374": {DirectionCredit, "frb_statement_recap"},
	"376": {DirectionCredit, "savings_bond_letter_or_adjustment"},
	"377": {DirectionCredit, "treasury_tax_and_loan_credit"},
	"378": {DirectionCredit, "transfer_of_treasury_credit"},
	"379": {DirectionCredit, "frb_government_checks_cash_letter_credit"},
	"381": {DirectionCredit, "frb_government_check_adjustment"},
	"382": {DirectionCredit, "frb_postal_money_order_credit"},
	"383": {DirectionCredit, "frb_postal_money_order_adjustment"},
	"384": {DirectionCredit, "frb_cash_letter_auto_charge_credit"},
	"386": {DirectionCredit, "frb_cash_letter_auto_charge_adjustment"},
	"387": {DirectionCredit, "frb_fine_sort_cash_letter_credit"},
	"388": {DirectionCredit, "frb_fine_sort_adjustment"},
	"391": {DirectionCredit, "universal_credit"},
	"392": {DirectionCredit, "freight_payment_credit"},
	"393": {DirectionCredit, "itemized_credit_over10000"},
	"394": {DirectionCredit, "cumulative_credits"},
	"395": {DirectionCredit, "check_reversal"},
	"397": {DirectionCredit, "float_adjustment"},
	"398": {DirectionCredit, "miscellaneous_fee_refund"},
	"399": {DirectionCredit, "miscellaneous_credit"},
	"408": {DirectionDebit, "float_adjustment"},
	"409": {DirectionDebit, "debit_any_type"},
	"415": {DirectionDebit, "lockbox_debit"},
	"421": {DirectionDebit, "edi_transaction_debit"},
	"422": {DirectionDebit, "edibanx_settlement_debit"},
	"423": {DirectionDebit, "edibanx_return_item_debit"},
	"435": {DirectionDebit, "payable_through_draft"},
	"445": {DirectionDebit, "ach_concentration_debit"},
	"447": {DirectionDebit, "ach_disbursement_funding_debit"},
	"451": {DirectionDebit, "ach_debit_received"},
	"452": {DirectionDebit, "item_in_ach_disbursement_or_debit"},
	"455": {DirectionDebit, "preauthorized_ach_debit"},
	"462": {DirectionDebit, "account_holder_initiated_ach_debit"},
	"464": {DirectionDebit, "corporate_trade_payment_debit"},
	"466": {DirectionDebit, "ach_settlement"},
	"468": {DirectionDebit, "ach_return_item_or_adjustment_settlement"},
	"469": {DirectionDebit, "miscellaneous_ach_debit"},
	"472": {DirectionDebit, "cumulative_checks_paid"},
	"474": {DirectionDebit, "certified_check_debit"},
	"475": {DirectionDebit, "check_paid"},
	"476": {DirectionDebit, "federal_reserve_bank_letter_debit"},
	"477": {DirectionDebit, "bank_originated_debit"},
	"479": {DirectionDebit, "list_post_debit"},
	"481": {DirectionDebit, "individual_loan_payment"},
	"484": {DirectionDebit, "draft"},
	"485": {DirectionDebit, "dtc_debit"},
	"487": {DirectionDebit, "cash_letter_debit"},
	"489": {DirectionDebit, "cash_letter_adjustment"},
	"491": {DirectionDebit, "individual_outgoing_internal_money_transfer"},
	"493": {DirectionDebit, "customer_terminal_initiated_money_transfer"},
	"495": {DirectionDebit, "outgoing_money_transfer"},
	"496": {DirectionDebit, "money_transfer_adjustment"},
	"498": {DirectionDebit, "compensation"},
	"501": {DirectionDebit, "individual_automatic_transfer_debit"},
	"502": {DirectionDebit, "bond_operations_debit"},
	"506": {DirectionDebit, "book_transfer_debit"},
	"508": {DirectionDebit, "individual_international_money_transfer_debits"},
	"512": {DirectionDebit, "letter_of_credit_debit"},
	"513": {DirectionDebit, "letter_of_credit"},
	"514": {DirectionDebit, "foreign_exchange_debit"},
	"516": {DirectionDebit, "foreign_remittance_debit"},
	"518": {DirectionDebit, "foreign_collection_debit"},
	"522": {DirectionDebit, "foreign_checks_paid"},
	"524": {DirectionDebit, "commission"},
	"526": {DirectionDebit, "international_money_market_trading"},
	"527": {DirectionDebit, "standing_order"},
	"529": {DirectionDebit, "miscellaneous_international_debit"},
	"531": {DirectionDebit, "securities_purchased"},
	"533": {DirectionDebit, "security_collection_debit"},
	"535": {DirectionDebit, "purchase_of_equity_securities"},
	"538": {DirectionDebit, "matured_repurchase_order"},
	"540": {DirectionDebit, "coupon_collection_debit"},
	"541": {DirectionDebit, "bankers_acceptances"},
	"542": {DirectionDebit, "purchase_of_debt_securities"},
	"543": {DirectionDebit, "domestic_collection"},
	"544": {DirectionDebit, "interest_matured_principal_payment"},
	"546": {DirectionDebit, "commercial_paper"},
	"547": {DirectionDebit, "capital_change"},
	"548": {DirectionDebit, "savings_bonds_sales_adjustment"},
	"549": {DirectionDebit, "miscellaneous_security_debit"},
	"552": {DirectionDebit, "credit_reversal"},
	"554": {DirectionDebit, "posting_error_correction_debit"},
	"555": {DirectionDebit, "deposited_item_returned"},
	"557": {DirectionDebit, "individual_ach_return_item"},
	"558": {DirectionDebit, "ach_reversal_debit"},
	"561": {DirectionDebit, "individual_rejected_debit"},
	"563": {DirectionDebit, "overdraft"},
	"564": {DirectionDebit, "overdraft_fee"},
	"566": {DirectionDebit, "return_item"},
	"567": {DirectionDebit, "return_item_fee"},
	"568": {DirectionDebit, "return_item_adjustment"},
	"574": {DirectionDebit, "cumulative_zba_debits"},
	"575": {DirectionDebit, "zba_debit"},
	"577": {DirectionDebit, "zba_debit_transfer"},
	"578": {DirectionDebit, "zba_debit_adjustment"},
	"581": {DirectionDebit, "individual_controlled_disbursing_debit"},
	"595": {DirectionDebit, "atm_debit"},
	"597": {DirectionDebit, "arp_debit"},
	"616": {DirectionDebit, "federal_reserve_bank_commercial_bank_debit"},
	"622": {DirectionDebit, "broker_debit"},
	"627": {DirectionDebit, "fed_funds_purchased"},
	"629": {DirectionDebit, "cash_center_debit"},
	"631": {DirectionDebit, "debit_adjustment"},
	"633": {DirectionDebit, "trust_debit"},
	"634": {DirectionDebit, "ytd_adjustment_debit"},
	"641": {DirectionDebit, "individual_escrow_debit"},
	"644": {DirectionDebit, "individual_back_value_debit"},
	"651": {DirectionDebit, "individual_investment_purchased"},
	"654": {DirectionDebit, "interest_debit"},
	"656": {DirectionDebit, "sweep_principal_buy"},
	"657": {DirectionDebit, "futures_debit"},
	"658": {DirectionDebit, "principal_payments_debit"},
	"659": {DirectionDebit, "interest_adjustment_debit"},
	"661": {DirectionDebit, "account_analysis_fee"},
	"662": {DirectionDebit, "correspondent_collection_debit"},
	"663": {DirectionDebit, "correspondent_collection_adjustment"},
	"664": {DirectionDebit, "loan_participation"},
	"666": {DirectionDebit, "currency_and_coin_shipped"},
	"667": {DirectionDebit, "food_stamp_letter"},
	"668": {DirectionDebit, "food_stamp_adjustment"},
	"669": {DirectionDebit, "clearing_settlement_debit"},
	"672": {DirectionDebit, "back_value_adjustment"},
	"673": {DirectionDebit, "customer_payroll"},
	"674": {DirectionDebit, "frb_statement_recap"},
	"676": {DirectionDebit, "savings_bond_letter_or_adjustment"},
	"677": {DirectionDebit, "treasury_tax_and_loan_debit"},
	"678": {DirectionDebit, "transfer_of_treasury_debit"},
	"679": {DirectionDebit, "frb_government_checks_cash_letter_debit"},
	"681": {DirectionDebit, "frb_government_check_adjustment"},
	"682": {DirectionDebit, "frb_postal_money_order_debit"},
	"683": {DirectionDebit, "frb_postal_money_order_adjustment"},
	"684": {DirectionDebit, "frb_cash_letter_auto_charge_debit"},
	"686": {DirectionDebit, "frb_cash_letter_auto_charge_adjustment"},
	"687": {DirectionDebit, "frb_fine_sort_cash_letter_debit"},
	"688": {DirectionDebit, "frb_fine_sort_adjustment"},
	"691": {DirectionDebit, "universal_debit"},
	"692": {DirectionDebit, "freight_payment_debit"},
	"693": {DirectionDebit, "itemized_debit_over10000"},
	"694": {DirectionDebit, "deposit_reversal"},
	"695": {DirectionDebit, "deposit_correction_debit"},
	"696": {DirectionDebit, "regular_collection_debit"},
	"697": {DirectionDebit, "cumulative_debits"},
	"698": {DirectionDebit, "miscellaneous_fees"},
	"699": {DirectionDebit, "miscellaneous_debit"},
	"721": {DirectionCredit, "amount_applied_to_interest"},
	"722": {DirectionCredit, "amount_applied_to_principal"},
	"723": {DirectionCredit, "amount_applied_to_escrow"},
	"724": {DirectionCredit, "amount_applied_to_late_charges"},
	"725": {DirectionCredit, "amount_applied_to_buydown"},
	"726": {DirectionCredit, "amount_applied_to_misc_fees"},
	"727": {DirectionCredit, "amount_applied_to_deferred_interest_detail"},
	"728": {DirectionCredit, "amount_applied_to_service_charge"},
	"890": {DirectionUnknown, "info"},
}
