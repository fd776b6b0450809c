package reviews

// DefaultCategoryTable returns the built-in category keyword tables for all
// three sentiment buckets. Deployments retune these through the YAML
// override without redeploying.
func DefaultCategoryTable() CategoryTable {
	return CategoryTable{
		Positive: []Category{
			{Name: "맛", Keywords: []string{"맛있", "달콤", "고소", "진한", "부드러", "깔끔", "신선", "풍미", "향", "달달", "짭짤", "매콤", "시원", "담백", "진짜맛있", "존맛"}},
			{Name: "식감", Keywords: []string{"쫄깃", "바삭", "촉촉", "부드러", "탱탱", "씹히", "질감", "식감", "텍스처", "크런치", "쫀득", "말랑", "단단"}},
			{Name: "배송", Keywords: []string{"배송", "포장", "빠른", "신속", "안전", "포장상태", "배달", "택배", "도착", "빨리", "신속배송", "당일배송"}},
			{Name: "가격", Keywords: []string{"저렴", "합리적", "가성비", "할인", "싼", "경제적", "가격", "비용", "돈", "가격대비", "세일", "특가"}},
			{Name: "서비스", Keywords: []string{"친절", "응답", "문의", "교환", "환불", "고객서비스", "직원", "상담", "대응", "서비스", "응대"}},
			{Name: "품질", Keywords: []string{"품질", "만족", "좋은", "훌륭", "우수", "최고", "완벽", "정성", "고급", "퀄리티"}},
			{Name: "외관", Keywords: []string{"예쁜", "깔끔", "포장", "디자인", "색깔", "모양", "보기좋", "깨끗", "이쁜", "예뻐", "디자인이쁜"}},
			{Name: "양", Keywords: []string{"많이", "푸짐", "양많", "충분", "넉넉", "가득", "풍성", "듬뿍"}},
		},
		Neutral: []Category{
			{Name: "일반적", Keywords: []string{"그냥", "보통", "평범", "무난", "일반적", "나쁘지않", "그럭저럭", "평균"}},
			{Name: "애매한 맛", Keywords: []string{"그저그런", "평범한맛", "특별하지않", "무난한맛", "그런대로"}},
			{Name: "보통 품질", Keywords: []string{"보통품질", "평균적", "무난한품질", "그럭저럭품질"}},
			{Name: "가격 무난", Keywords: []string{"적당", "그럭저럭가격", "무난한가격", "평균가격"}},
			{Name: "배송 보통", Keywords: []string{"보통배송", "평균배송", "무난한배송"}},
			{Name: "애매한 평가", Keywords: []string{"모르겠", "애매", "그냥그래", "특별한감정없", "딱히"}},
			{Name: "기대와 다름", Keywords: []string{"기대보다", "생각보다", "예상과달라", "기대와달라"}},
		},
		Negative: []Category{
			{Name: "맛 문제", Keywords: []string{"맛없", "별로", "짜다", "달다", "시다", "쓰다", "비린내", "냄새", "맛이이상", "맛이없어"}},
			{Name: "품질 문제", Keywords: []string{"품질나쁘", "조잡", "싸구려", "부실", "불량", "하자", "망가져", "깨져"}},
			{Name: "배송 문제", Keywords: []string{"배송늦", "포장불량", "배송문제", "늦게도착", "파손", "포장상태나쁘", "배송오류"}},
			{Name: "가격 불만", Keywords: []string{"비싸", "비쌈", "가격부담", "가성비나쁘", "돈아까워", "가격대비별로"}},
			{Name: "서비스 불만", Keywords: []string{"불친절", "응답없", "문의무시", "서비스나쁘", "대응늦", "무례"}},
			{Name: "크기/양 부족", Keywords: []string{"작다", "적어", "양적어", "크기작아", "부족", "양부족"}},
			{Name: "기대 실망", Keywords: []string{"실망", "기대이하", "후회", "별로야", "최악", "다시안사"}},
			{Name: "기타 불만", Keywords: []string{"불편", "문제", "고장", "작동안됨", "사용법복잡"}},
		},
	}
}
